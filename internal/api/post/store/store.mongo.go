package poststore

import (
	"context"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/strategistayub/SocialProFlow/internal/api/base/service"
	"github.com/strategistayub/SocialProFlow/internal/api/post/models"
	"github.com/strategistayub/SocialProFlow/internal/common"
	"github.com/strategistayub/SocialProFlow/internal/utility"
)

// MongoPostStore lưu post trong MongoDB, build trên BaseServiceMongo
type MongoPostStore struct {
	base *basesvc.BaseServiceMongoImpl[models.Post]
	seq  atomic.Int64
}

// NewMongoPostStore tạo store trên collection posts
func NewMongoPostStore(collection *mongo.Collection) *MongoPostStore {
	s := &MongoPostStore{
		base: basesvc.NewBaseServiceMongo[models.Post](collection),
	}
	s.seq.Store(time.Now().UnixNano())
	return s
}

// nextSeq cấp số thứ tự insert tăng dần, khởi điểm theo thời gian
// để không đụng seq của các lần chạy trước
func (s *MongoPostStore) nextSeq() int64 {
	return s.seq.Add(1)
}

// Insert tạo post mới. Trả về ErrDuplicate nếu id đã tồn tại (unique _id index).
func (s *MongoPostStore) Insert(ctx context.Context, post models.Post) (models.Post, error) {
	post.Seq = s.nextSeq()
	return s.base.InsertOne(ctx, post)
}

// Get lấy post theo id
func (s *MongoPostStore) Get(ctx context.Context, id string) (models.Post, error) {
	return s.base.FindOneById(ctx, id)
}

// Update thay thế nội dung post theo post.ID
func (s *MongoPostStore) Update(ctx context.Context, post models.Post) (models.Post, error) {
	dataMap, err := utility.ToMap(post)
	if err != nil {
		return models.Post{}, common.ErrInvalidFormat
	}
	// _id là immutable, không đưa vào $set
	delete(dataMap, "_id")

	return s.base.UpdateById(ctx, post.ID, dataMap)
}

// Delete xóa post theo id. Trả về ErrNotFound nếu id không tồn tại.
func (s *MongoPostStore) Delete(ctx context.Context, id string) error {
	return s.base.DeleteById(ctx, id)
}

// List trả về tất cả post theo thứ tự insert (seq tăng dần)
func (s *MongoPostStore) List(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	return s.base.Find(ctx, bson.D{}, opts)
}

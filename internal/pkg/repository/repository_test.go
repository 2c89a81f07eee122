package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/folio-space/core/internal/models"
)

// testDoc exercises the generic surface with a minimal entity.
type testDoc struct {
	models.Base `bson:",inline"`
	Name        string `bson:"name"`
	Score       int64  `bson:"score"`
}

// testCollection connects to the database named by MONGO_TEST_URI, or
// skips the test when none is available.
func testCollection(t *testing.T) *mongo.Collection {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	coll := client.Database("folio_space_test").Collection("repo_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = coll.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return coll
}

func TestParseID(t *testing.T) {
	_, ok := ParseID("not-a-hex-id")
	assert.False(t, ok)

	_, ok = ParseID("")
	assert.False(t, ok)

	_, ok = ParseID("507f1f77bcf86cd799439011")
	assert.True(t, ok)
}

func TestCreateAndFind(t *testing.T) {
	repo := New[testDoc](testCollection(t))
	ctx := context.Background()

	doc := &testDoc{Name: "first", Score: 3}
	require.NoError(t, repo.Create(ctx, doc))
	assert.False(t, doc.ID.IsZero(), "Create must assign an id")
	assert.False(t, doc.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, doc.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "first", found.Name)

	missing, err := repo.FindByID(ctx, "507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Nil(t, missing)

	malformed, err := repo.FindByID(ctx, "zzz")
	require.NoError(t, err, "malformed ids are not server errors")
	assert.Nil(t, malformed)
}

func TestSetByID(t *testing.T) {
	repo := New[testDoc](testCollection(t))
	ctx := context.Background()

	doc := &testDoc{Name: "before"}
	require.NoError(t, repo.Create(ctx, doc))

	updated, err := repo.SetByID(ctx, doc.ID.Hex(), bson.M{"name": "after"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "after", updated.Name)
	assert.True(t, updated.UpdatedAt.After(doc.UpdatedAt) || updated.UpdatedAt.Equal(doc.UpdatedAt))

	none, err := repo.SetByID(ctx, "507f1f77bcf86cd799439011", bson.M{"name": "x"})
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestUpdateByIDIncrement(t *testing.T) {
	repo := New[testDoc](testCollection(t))
	ctx := context.Background()

	doc := &testDoc{Name: "counter", Score: 1}
	require.NoError(t, repo.Create(ctx, doc))

	updated, err := repo.UpdateByID(ctx, doc.ID.Hex(), bson.M{"$inc": bson.M{"score": 1}})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, int64(2), updated.Score, "returns the post-increment state")
}

func TestDeleteByID(t *testing.T) {
	repo := New[testDoc](testCollection(t))
	ctx := context.Background()

	doc := &testDoc{Name: "doomed"}
	require.NoError(t, repo.Create(ctx, doc))

	removed, err := repo.DeleteByID(ctx, doc.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "doomed", removed.Name)

	again, err := repo.DeleteByID(ctx, doc.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestSumField(t *testing.T) {
	repo := New[testDoc](testCollection(t))
	ctx := context.Background()

	total, err := repo.SumField(ctx, "score")
	require.NoError(t, err)
	assert.Zero(t, total, "empty collection sums to zero")

	for _, score := range []int64{2, 3, 5} {
		require.NoError(t, repo.Create(ctx, &testDoc{Name: "n", Score: score}))
	}

	total, err = repo.SumField(ctx, "score")
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
}

func TestListSortedNewestFirst(t *testing.T) {
	repo := New[testDoc](testCollection(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &testDoc{Name: "n", Score: int64(i)}))
		time.Sleep(5 * time.Millisecond)
	}

	items, err := repo.List(ctx, nil, bson.D{{Key: "createdAt", Value: -1}}, 0, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].Score)
	assert.Equal(t, int64(1), items[1].Score)
}

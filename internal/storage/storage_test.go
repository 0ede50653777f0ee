package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"folio/models"
)

func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.Get(ctx, models.KeyTheme)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, models.KeyTheme, "dark"))
	value, found, err := s.Get(ctx, models.KeyTheme)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)

	require.NoError(t, s.Set(ctx, models.KeyTheme, "light"))
	value, _, err = s.Get(ctx, models.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", value)

	require.NoError(t, s.Delete(ctx, models.KeyTheme))
	_, found, err = s.Get(ctx, models.KeyTheme)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStorage(t *testing.T) {
	t.Parallel()
	exerciseStorage(t, NewMemory(nil))
}

func TestMemoryFailureSwitches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory(map[string]string{"a": "1"})

	m.FailWrites(true)
	assert.ErrorIs(t, m.Set(ctx, "a", "2"), ErrUnavailable)
	assert.Equal(t, map[string]string{"a": "1"}, m.Snapshot())

	m.FailReads(true)
	_, _, err := m.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrUnavailable)

	m.FailReads(false)
	m.FailWrites(false)
	require.NoError(t, m.Set(ctx, "a", "3"))
	assert.Equal(t, 1, m.Writes())
}

func TestFileStorage(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	exerciseStorage(t, NewFile(path))
}

func TestFileStorageSurvivesReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, NewFile(path).Set(ctx, models.KeyTheme, "dark"))

	value, found, err := NewFile(path).Get(ctx, models.KeyTheme)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)
}

func TestFileStorageCorruptFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	f := NewFile(path)

	_, _, err := f.Get(ctx, models.KeyTheme)
	require.Error(t, err)

	require.NoError(t, f.Set(ctx, models.KeyTheme, "dark"))
	value, found, err := f.Get(ctx, models.KeyTheme)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)
}

func loadedSession(t *testing.T) (*scs.SessionManager, context.Context) {
	t.Helper()
	sm := scs.New()
	ctx, err := sm.Load(context.Background(), "")
	require.NoError(t, err)
	return sm, ctx
}

func TestSessionStorage(t *testing.T) {
	t.Parallel()

	sm, ctx := loadedSession(t)
	s := NewSession(sm)

	require.NoError(t, s.Set(ctx, models.KeyTheme, "dark"))
	value, found, err := s.Get(ctx, models.KeyTheme)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)
	assert.Equal(t, "dark", sm.GetString(ctx, "folio:theme"))

	require.NoError(t, s.Delete(ctx, models.KeyTheme))
	_, found, err = s.Get(ctx, models.KeyTheme)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionStorageWithoutLoadedSession(t *testing.T) {
	t.Parallel()

	s := NewSession(scs.New())
	_, _, err := s.Get(context.Background(), models.KeyTheme)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, s.Set(context.Background(), models.KeyTheme, "dark"), ErrUnavailable)

	var missing *Session
	_, _, err = missing.Get(context.Background(), models.KeyTheme)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestProfileIsStablePerSession(t *testing.T) {
	t.Parallel()

	sm, ctx := loadedSession(t)
	first, err := Profile(ctx, sm)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := Profile(ctx, sm)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, otherCtx := loadedSession(t)
	other, err := Profile(otherCtx, sm)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, db.AutoMigrate(&models.Setting{}))
	return db
}

func TestDatabaseStorage(t *testing.T) {
	t.Parallel()
	exerciseStorage(t, NewDatabase(openTestDB(t), "profile-a"))
}

func TestDatabaseStorageIsolatesProfiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openTestDB(t)
	a := NewDatabase(db, "profile-a")
	b := NewDatabase(db, "profile-b")

	require.NoError(t, a.Set(ctx, models.KeyTheme, "dark"))
	_, found, err := b.Get(ctx, models.KeyTheme)
	require.NoError(t, err)
	assert.False(t, found)

	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDatabaseStorageRequiresProfile(t *testing.T) {
	t.Parallel()

	_, _, err := NewDatabase(openTestDB(t), "  ").Get(context.Background(), models.KeyTheme)
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, NewDatabase(nil, "p").Set(context.Background(), models.KeyTheme, "dark"), ErrUnavailable)
}

func TestRedisKeyLayout(t *testing.T) {
	t.Parallel()

	r := NewRedis(nil, " visitor ", time.Hour)
	assert.Equal(t, "folio:visitor:theme", r.key(models.KeyTheme))
}

func TestRedisUnreachableReportsUnavailable(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })

	r := NewRedis(client, "visitor", 0)
	_, _, err := r.Get(context.Background(), models.KeyTheme)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, r.Set(context.Background(), models.KeyTheme, "dark"), ErrUnavailable)
}

func TestFactoryFor(t *testing.T) {
	t.Parallel()

	sm, ctx := loadedSession(t)
	db := openTestDB(t)

	s, err := Factory{Sessions: sm}.For(ctx)
	require.NoError(t, err)
	assert.IsType(t, &Session{}, s)

	s, err = Factory{Backend: "DATABASE", Sessions: sm, Database: db}.For(ctx)
	require.NoError(t, err)
	dbStorage, ok := s.(*Database)
	require.True(t, ok)
	profile, err := Profile(ctx, sm)
	require.NoError(t, err)
	assert.Equal(t, profile, dbStorage.profile)

	s, err = Factory{Backend: BackendRedis, Sessions: sm}.For(ctx)
	require.NoError(t, err)
	assert.IsType(t, &Redis{}, s)

	_, err = Factory{Backend: "etcd", Sessions: sm}.For(ctx)
	assert.Error(t, err)
}

func TestValidBackend(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidBackend("session"))
	assert.True(t, ValidBackend(" Redis "))
	assert.False(t, ValidBackend("etcd"))
}

func TestFactoryPeekLeavesSessionUntouched(t *testing.T) {
	t.Parallel()

	sm, ctx := loadedSession(t)
	db := openTestDB(t)
	f := Factory{Backend: BackendDatabase, Sessions: sm, Database: db}

	s, err := f.Peek(ctx)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)
	assert.Equal(t, scs.Unmodified, sm.Status(ctx))
	_, ok := LookupProfile(ctx, sm)
	assert.False(t, ok)

	profile, err := Profile(ctx, sm)
	require.NoError(t, err)
	s, err = f.Peek(ctx)
	require.NoError(t, err)
	dbStorage, isDB := s.(*Database)
	require.True(t, isDB)
	assert.Equal(t, profile, dbStorage.profile)

	s, err = Factory{Sessions: sm}.Peek(ctx)
	require.NoError(t, err)
	assert.IsType(t, &Session{}, s)
}

func TestLookupProfileWithoutLoadedSession(t *testing.T) {
	t.Parallel()

	_, ok := LookupProfile(context.Background(), scs.New())
	assert.False(t, ok)
	_, ok = LookupProfile(context.Background(), nil)
	assert.False(t, ok)
}

// fakeRedis keeps strings in a map and implements the commands Redis uses.
type fakeRedis struct {
	redis.Cmdable
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = fmt.Sprint(value)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func TestRedisStorage(t *testing.T) {
	t.Parallel()

	client := newFakeRedis()
	exerciseStorage(t, NewRedis(client, "visitor", 24*time.Hour))
}

func TestRedisStorageScopesAndExpiresKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newFakeRedis()
	a := NewRedis(client, "profile-a", time.Hour)
	b := NewRedis(client, "profile-b", 0)

	require.NoError(t, a.Set(ctx, models.KeyTheme, "dark"))
	_, found, err := b.Get(ctx, models.KeyTheme)
	require.NoError(t, err)
	assert.False(t, found)

	assert.Equal(t, "dark", client.values["folio:profile-a:theme"])
	assert.Equal(t, time.Hour, client.ttls["folio:profile-a:theme"])

	require.NoError(t, b.Set(ctx, models.KeyTheme, "light"))
	assert.Zero(t, client.ttls["folio:profile-b:theme"])

	require.NoError(t, a.Delete(ctx, models.KeyTheme))
	_, found, err = a.Get(ctx, models.KeyTheme)
	require.NoError(t, err)
	assert.False(t, found)
	value, found, err := b.Get(ctx, models.KeyTheme)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", value)
}

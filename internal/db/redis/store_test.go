package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/mock"
	"go.uber.org/mock/gomock"

	"github.com/kailas-cloud/sage/internal/db"
)

// --- client.go tests ---

func TestClientOption(t *testing.T) {
	opt := clientOption(Config{
		Addrs:       []string{"localhost:6379"},
		Username:    "sage",
		Password:    "secret",
		DB:          3,
		DialTimeout: 1500 * time.Millisecond,
	})

	if opt.Dialer.Timeout != 1500*time.Millisecond {
		t.Errorf("Dialer.Timeout = %v, want 1.5s", opt.Dialer.Timeout)
	}
	if opt.SelectDB != 3 || opt.Username != "sage" || opt.Password != "secret" {
		t.Errorf("unexpected credentials/db: %+v", opt)
	}
	if !opt.DisableCache {
		t.Error("expected client-side cache disabled")
	}

	if got := clientOption(Config{Addrs: []string{"x:1"}}).Dialer.Timeout; got != 0 {
		t.Errorf("zero DialTimeout should keep rueidis default, got %v", got)
	}
}

func TestNewStore_RequiresAddrs(t *testing.T) {
	if _, err := NewStore(Config{}); err == nil {
		t.Fatal("expected error for empty addrs")
	}
}

func TestPing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.Result(mock.RedisString("PONG")))

	s := NewStoreForTest(c)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPing_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreForTest(c)
	err := s.Ping(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var dbErr *db.Error
	if !errors.As(err, &dbErr) || dbErr.Op != db.OpPing {
		t.Errorf("expected db.Error with op %s, got %v", db.OpPing, err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected wrapped DeadlineExceeded, got %v", err)
	}
}

func TestWaitForReady_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.Result(mock.RedisString("PONG")))

	s := NewStoreForTest(c)
	if err := s.WaitForReady(context.Background(), time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWaitForReady_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.ErrorResult(errors.New("conn refused"))).
		AnyTimes()

	s := NewStoreForTest(c)
	if err := s.WaitForReady(context.Background(), 250*time.Millisecond); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestIsRedisErr(t *testing.T) {
	if isRedisErr(errors.New("plain"), "plain") {
		t.Error("non-redis error must not match")
	}
}

// --- index.go tests ---

func TestListCollections_FTList(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("FT._LIST")).
		Return(mock.Result(mock.RedisArray(
			mock.RedisString("zeta"),
			mock.RedisString("alpha"),
			mock.RedisString("mid"),
		)))

	s := NewStoreForTest(c)
	names, err := s.ListCollections(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "mid" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestListCollections_ZeroLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	s := NewStoreForTest(c)
	names, err := s.ListCollections(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected no names, got %v", names)
	}
}

func TestListCollections_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("FT._LIST")).
		Return(mock.Result(mock.RedisError("NOPERM this user has no permissions")))

	s := NewStoreForTest(c)
	_, err := s.ListCollections(context.Background(), 10)
	var dbErr *db.Error
	if !errors.As(err, &dbErr) || dbErr.Op != db.OpFTList {
		t.Errorf("expected db.Error with op %s, got %v", db.OpFTList, err)
	}
}

func TestListCollections_FallsBackToScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("FT._LIST")).
		Return(mock.Result(mock.RedisError("ERR unknown command 'FT._LIST'")))

	first := true
	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "SCAN"
		})).
		DoAndReturn(func(_ context.Context, _ rueidis.Completed) rueidis.RedisResult {
			if first {
				first = false
				return mock.Result(mock.RedisArray(
					mock.RedisInt64(7),
					mock.RedisArray(mock.RedisString("users:1"), mock.RedisString("users:2")),
				))
			}
			return mock.Result(mock.RedisArray(
				mock.RedisInt64(0),
				mock.RedisArray(mock.RedisString("orders:9"), mock.RedisString("plainkey")),
			))
		}).Times(2)

	s := NewStoreForTest(c)
	names, err := s.ListCollections(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"orders", "plainkey", "users"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestListCollections_ScanStopsAtLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("FT._LIST")).
		Return(mock.Result(mock.RedisError("ERR unknown command")))
	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "SCAN"
		})).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(99),
			mock.RedisArray(mock.RedisString("b:1"), mock.RedisString("a:1"), mock.RedisString("c:1")),
		)))

	s := NewStoreForTest(c)
	names, err := s.ListCollections(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected names: %v", names)
	}
}

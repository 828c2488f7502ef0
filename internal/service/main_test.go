package service_test

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/munier-ie/stayonx/internal/service"
	"github.com/munier-ie/stayonx/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	os.Exit(m.Run())
}

// Variables for tests
var (
	testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	clock   = service.WithClock(func() time.Time { return testNow })
)

func testProfile(uid uuid.UUID) *entity.Profile {
	return &entity.Profile{
		ID:        uid,
		Handle:    "test_handle",
		Timezone:  "UTC",
		Goals:     entity.DefaultGoals(),
		CreatedAt: testNow.AddDate(0, -1, 0),
	}
}

func day(s string) entity.Day {
	d, err := entity.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func record(uid uuid.UUID, date string, tweets, replies, dms int) entity.ActivityRecord {
	return entity.ActivityRecord{
		UserID:         uid,
		Date:           day(date),
		ActivityCounts: entity.ActivityCounts{Tweets: tweets, Replies: replies, DMs: dms},
	}
}

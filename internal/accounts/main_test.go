package accounts

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeNotifier records Send calls and can be told to fail.
type fakeNotifier struct {
	sendErr     error
	sendCalled  bool
	lastTo      string
	lastSubject string
	lastHTML    string
	lastText    string
}

func (f *fakeNotifier) Send(ctx context.Context, to, subject, bodyHTML, bodyText string) error {
	f.sendCalled = true
	f.lastTo = to
	f.lastSubject = subject
	f.lastHTML = bodyHTML
	f.lastText = bodyText
	return f.sendErr
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock, *fakeNotifier) {
	t.Helper()

	var db *sql.DB
	db, smock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to open GORM with mock: %v", err)
	}

	notifier := &fakeNotifier{}
	svc := NewService(gormDB, notifier, "http://localhost:3000", 4).
		WithClock(func() time.Time { return testNow })
	return svc, smock, notifier
}

func anyArg() sqlmock.Argument { return sqlmock.AnyArg() }

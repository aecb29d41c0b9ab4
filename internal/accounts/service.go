package accounts

import (
	"regexp"
	"time"

	"ketotrack/backend/internal/notifications"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service bundles the registration, login and password-reset operations.
// The store handle, notifier and clock are injected so tests can substitute
// fakes instead of relying on package globals.
type Service struct {
	db         *gorm.DB
	notifier   notifications.EmailNotifier
	baseURL    string
	bcryptCost int
	now        func() time.Time
}

// NewService returns a Service bound to the given store and notifier.
// baseURL is the public base URL reset links are built against.
func NewService(db *gorm.DB, notifier notifications.EmailNotifier, baseURL string, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		db:         db,
		notifier:   notifier,
		baseURL:    baseURL,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

// WithClock replaces the service clock. Test helper.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

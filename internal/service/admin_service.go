package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/repository"
	appErrors "github.com/soran-institute/institute-api/pkg/errors"
)

// AdminService performs the password-guarded bulk wipes.
type AdminService struct {
	store    repository.Store
	password string
	logger   *zap.Logger
}

// NewAdminService constructs the admin service. The password may be given as
// cleartext or as a bcrypt hash of it.
func NewAdminService(store repository.Store, password string, logger *zap.Logger) *AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{store: store, password: password, logger: logger}
}

// Wipe clears one collection, or all of them. The password check happens
// before anything is touched.
func (s *AdminService) Wipe(ctx context.Context, collection, password string) (*dto.WipeResponse, error) {
	if !s.passwordMatches(password) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "invalid admin password")
	}

	var message string
	err := s.store.Exclusive(func() error {
		switch collection {
		case "attendance":
			message = "attendance records wiped"
			return s.store.WriteAttendance(ctx, nil)
		case "sync-history":
			message = "sync history wiped"
			return s.store.WriteSyncHistory(ctx, nil)
		case "all":
			message = "all collections wiped"
			if err := s.store.WriteStudents(ctx, nil); err != nil {
				return err
			}
			if err := s.store.WriteAttendance(ctx, nil); err != nil {
				return err
			}
			if err := s.store.WriteGrades(ctx, nil); err != nil {
				return err
			}
			return s.store.WriteSyncHistory(ctx, nil)
		default:
			return appErrors.Clone(appErrors.ErrValidation, "unknown data type")
		}
	})
	if err != nil {
		if appErr := appErrors.FromError(err); appErr.Code == appErrors.ErrValidation.Code {
			return nil, appErr
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to wipe data")
	}

	s.logger.Warn("collection wiped", zap.String("type", collection))
	return &dto.WipeResponse{
		Success:   true,
		Message:   message,
		Timestamp: models.Now(),
	}, nil
}

// passwordMatches compares against the configured secret: bcrypt when the
// secret is stored hashed, constant-time byte comparison otherwise.
func (s *AdminService) passwordMatches(password string) bool {
	if strings.HasPrefix(s.password, "$2a$") || strings.HasPrefix(s.password, "$2b$") || strings.HasPrefix(s.password, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(s.password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) == 1
}

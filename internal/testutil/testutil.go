// Package testutil holds the in-memory database and fakes shared by package tests.
package testutil

import (
	migration "FoodHub/cmd/database/migrate"
	"FoodHub/internal/utils/mailing"
	"FoodHub/internal/utils/storage"
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with every table migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

type SentMail struct {
	Kind  string
	To    string
	Value string
}

// Mailer records every message instead of sending it. Set Err to make
// every send fail.
type Mailer struct {
	mu   sync.Mutex
	Sent []SentMail
	Err  error
}

func (m *Mailer) record(kind, to, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentMail{Kind: kind, To: to, Value: value})
	return nil
}

func (m *Mailer) SendVerificationEmail(email, verificationToken string) error {
	return m.record("verification", email, verificationToken)
}

func (m *Mailer) SendWelcomeEmail(email, name string) error {
	return m.record("welcome", email, name)
}

func (m *Mailer) SendPasswordResetEmail(email, resetURL string) error {
	return m.record("reset", email, resetURL)
}

func (m *Mailer) SendResetSuccessEmail(email string) error {
	return m.record("reset-success", email, "")
}

// Last returns the most recent mail of the given kind.
func (m *Mailer) Last(kind string) (SentMail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.Sent) - 1; i >= 0; i-- {
		if m.Sent[i].Kind == kind {
			return m.Sent[i], true
		}
	}
	return SentMail{}, false
}

const storageHost = "https://storage.test/"

var (
	_ mailing.Mailer = (*Mailer)(nil)
	_ storage.AwsS3  = (*Storage)(nil)
)

// Storage keeps uploaded object keys in memory. Set Err to make uploads fail
// and DeleteErr to make deletes fail.
type Storage struct {
	mu        sync.Mutex
	Objects   map[string]string
	Deleted   []string
	Err       error
	DeleteErr error
}

func NewStorage() *Storage {
	return &Storage{Objects: map[string]string{}}
}

var ErrUploadFailed = errors.New("upload failed")

func (s *Storage) UploadFile(fileName string, file *multipart.FileHeader, folder string, _ ...string) (string, error) {
	objectKey := folder + "/" + fileName
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	s.Objects[objectKey] = file.Filename
	return objectKey, nil
}

func (s *Storage) DeleteFile(objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.Objects, objectKey)
	s.Deleted = append(s.Deleted, objectKey)
	return nil
}

func (s *Storage) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, storageHost) {
		return ""
	}
	return strings.TrimPrefix(link, storageHost)
}

func (s *Storage) GetPublicLinkKey(objectKey string) string {
	return storageHost + objectKey
}

// PNG is the smallest prefix http.DetectContentType reports as image/png.
var PNG = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

// FileHeader builds a multipart file header as if the field had been uploaded.
func FileHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File[field][0]
}

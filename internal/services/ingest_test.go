package services_test

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var captureNameRe = regexp.MustCompile(`^capture_42_\d{8}_\d{6}\.jpg$`)

func dataURI(raw []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)
}

func TestIngestService_LogEvent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := services.NewMockEventWriter(ctrl)
	mockFiles := services.NewMockSnapshotArchiver(ctrl)
	mockStream := services.NewMockEventPublisher(ctrl)
	svc := services.NewIngestService(mockEvents, mockFiles, mockStream)

	raw := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	var savedName string

	mockFiles.EXPECT().
		Save(gomock.Any(), raw).
		DoAndReturn(func(filename string, _ []byte) error {
			savedName = filename
			return nil
		})
	mockEvents.EXPECT().
		Save(gomock.Any(), int64(42), "drowsy", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ string, imagePath string) (int64, error) {
			assert.Equal(t, savedName, imagePath)
			return 7, nil
		})
	mockStream.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(nil)

	filename, err := svc.LogEvent(context.Background(), 42, "drowsy", dataURI(raw))
	assert.NoError(t, err)
	assert.Regexp(t, captureNameRe, filename)
	assert.Equal(t, savedName, filename)
}

func TestIngestService_LogEvent_NormalizesKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := services.NewMockEventWriter(ctrl)
	mockFiles := services.NewMockSnapshotArchiver(ctrl)
	svc := services.NewIngestService(mockEvents, mockFiles, nil)

	raw := []byte("snapshot")
	mockFiles.EXPECT().Save(gomock.Any(), raw).Return(nil)
	mockEvents.EXPECT().
		Save(gomock.Any(), int64(42), "yawning", gomock.Any()).
		Return(int64(8), nil)

	// The browser client reports capitalized kinds.
	_, err := svc.LogEvent(context.Background(), 42, " Yawning ", dataURI(raw))
	assert.NoError(t, err)
}

func TestIngestService_LogEvent_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewIngestService(services.NewMockEventWriter(ctrl), services.NewMockSnapshotArchiver(ctrl), nil)

	_, err := svc.LogEvent(context.Background(), 42, "asleep", dataURI([]byte("x")))
	assert.ErrorIs(t, err, services.ErrUnknownEventKind)
}

func TestIngestService_LogEvent_BadPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewIngestService(services.NewMockEventWriter(ctrl), services.NewMockSnapshotArchiver(ctrl), nil)

	_, err := svc.LogEvent(context.Background(), 42, "drowsy", "data:image/jpeg;base64,!!!not-base64!!!")
	assert.ErrorIs(t, err, services.ErrBadImagePayload)
}

func TestIngestService_LogEvent_BareBase64WithoutPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := services.NewMockEventWriter(ctrl)
	mockFiles := services.NewMockSnapshotArchiver(ctrl)
	svc := services.NewIngestService(mockEvents, mockFiles, nil)

	raw := []byte("no prefix")
	mockFiles.EXPECT().Save(gomock.Any(), raw).Return(nil)
	mockEvents.EXPECT().Save(gomock.Any(), int64(42), "drowsy", gomock.Any()).Return(int64(9), nil)

	_, err := svc.LogEvent(context.Background(), 42, "drowsy", base64.StdEncoding.EncodeToString(raw))
	assert.NoError(t, err)
}

func TestIngestService_LogEvent_ArchiveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := services.NewMockEventWriter(ctrl)
	mockFiles := services.NewMockSnapshotArchiver(ctrl)
	svc := services.NewIngestService(mockEvents, mockFiles, nil)

	mockFiles.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	// No event row may be written when the snapshot never landed.
	_, err := svc.LogEvent(context.Background(), 42, "drowsy", dataURI([]byte("x")))
	assert.EqualError(t, err, "disk full")
}

func TestIngestService_LogEvent_InsertFailureRemovesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := services.NewMockEventWriter(ctrl)
	mockFiles := services.NewMockSnapshotArchiver(ctrl)
	svc := services.NewIngestService(mockEvents, mockFiles, nil)

	var savedName string
	mockFiles.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(filename string, _ []byte) error {
			savedName = filename
			return nil
		})
	mockEvents.EXPECT().
		Save(gomock.Any(), int64(42), "drowsy", gomock.Any()).
		Return(int64(0), errors.New("insert failed"))
	mockFiles.EXPECT().
		Remove(gomock.Any()).
		DoAndReturn(func(filename string) error {
			assert.Equal(t, savedName, filename)
			return nil
		})

	_, err := svc.LogEvent(context.Background(), 42, "drowsy", dataURI([]byte("x")))
	assert.EqualError(t, err, "insert failed")
}

func TestIngestService_LogEvent_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := services.NewMockEventWriter(ctrl)
	mockFiles := services.NewMockSnapshotArchiver(ctrl)
	mockStream := services.NewMockEventPublisher(ctrl)
	svc := services.NewIngestService(mockEvents, mockFiles, mockStream)

	mockFiles.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	mockEvents.EXPECT().Save(gomock.Any(), int64(42), "drowsy", gomock.Any()).Return(int64(10), nil)
	mockStream.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("broker unavailable"))

	_, err := svc.LogEvent(context.Background(), 42, "drowsy", dataURI([]byte("x")))
	assert.NoError(t, err)
}

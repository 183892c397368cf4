package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/repositories"
	"github.com/sportbet/sportbet-api/storage"
)

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrEventNameRequired     = errors.New("event name is required")
	ErrEventNameConflict     = errors.New("event name already exists")
	ErrEventCreationFailed   = errors.New("failed to create event")
	ErrEventDeleteFailed     = errors.New("failed to delete event")
	ErrEmblemStorageDisabled = errors.New("emblem storage is not configured")
	ErrEmblemUploadFailed    = errors.New("failed to upload event emblem")
)

type EventService interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
	GetEventByName(ctx context.Context, name string) (*models.Event, error)
	CreateEvent(ctx context.Context, input CreateEventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, event *models.Event) error
	UploadEmblem(ctx context.Context, event *models.Event, file io.Reader, contentType string) (*models.Event, error)
}

type CreateEventInput struct {
	Name string `json:"name"`
}

type eventService struct {
	eventRepo repositories.EventRepository
	uploader  storage.FileUploader // nil when emblem storage is disabled
}

func NewEventService(eventRepo repositories.EventRepository, uploader storage.FileUploader) EventService {
	return &eventService{
		eventRepo: eventRepo,
		uploader:  uploader,
	}
}

func (s *eventService) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all events: %w", err)
	}
	for i := range events {
		s.fillEmblemURL(&events[i])
	}
	return events, nil
}

func (s *eventService) GetEventByName(ctx context.Context, name string) (*models.Event, error) {
	event, err := s.eventRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event %q: %w", name, err)
	}
	s.fillEmblemURL(event)
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, input CreateEventInput) (*models.Event, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEventNameRequired
	}

	event := &models.Event{Name: name}
	err := s.eventRepo.Create(ctx, event)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNameConflict) {
			return nil, ErrEventNameConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrEventCreationFailed, err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, event *models.Event) error {
	err := s.eventRepo.Delete(ctx, event.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("%w (name: %s): %w", ErrEventDeleteFailed, event.Name, err)
	}

	if s.uploader != nil && event.EmblemKey != nil {
		if delErr := s.uploader.Delete(ctx, *event.EmblemKey); delErr != nil {
			// The event is gone either way, the orphaned object is tolerable.
			return nil
		}
	}
	return nil
}

func (s *eventService) UploadEmblem(ctx context.Context, event *models.Event, file io.Reader, contentType string) (*models.Event, error) {
	if s.uploader == nil {
		return nil, ErrEmblemStorageDisabled
	}

	key := fmt.Sprintf("events/%d/emblem", event.ID)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmblemUploadFailed, err)
	}

	if err := s.eventRepo.UpdateEmblemKey(ctx, event.ID, &result.Key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmblemUploadFailed, err)
	}

	event.EmblemKey = &result.Key
	s.fillEmblemURL(event)
	return event, nil
}

func (s *eventService) fillEmblemURL(event *models.Event) {
	if s.uploader == nil || event.EmblemKey == nil {
		return
	}
	url := s.uploader.GetPublicURL(*event.EmblemKey)
	if url != "" {
		event.EmblemURL = &url
	}
}

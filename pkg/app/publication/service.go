package publication

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/domain"
	"github.com/Setharkk/Skyent-dev/pkg/domain/content"
	"github.com/Setharkk/Skyent-dev/pkg/domain/publication"
	"github.com/Setharkk/Skyent-dev/pkg/infra/database/types"
	"github.com/Setharkk/Skyent-dev/pkg/infra/events"
	"github.com/Setharkk/Skyent-dev/pkg/infra/prometheus"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PublishRequest struct {
	ContentID         uuid.UUID
	Platform          string
	ScheduleTime      *time.Time
	AdditionalOptions map[string]interface{}
}

type DirectPublishRequest struct {
	Content           string
	Platform          string
	Title             string
	MediaURLs         []string
	ScheduleTime      *time.Time
	AdditionalOptions map[string]interface{}
}

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=publication_service_mock.go --case=underscore --with-expecter
type Service interface {
	// Publish posts a stored generated content.
	Publish(ctx context.Context, req *PublishRequest) (*publication.Publication, error)
	PublishDirect(ctx context.Context, req *DirectPublishRequest) (*publication.Publication, error)
	Get(ctx context.Context, id uuid.UUID) (*publication.Publication, error)
	ListByContent(ctx context.Context, contentID uuid.UUID) ([]*publication.Publication, error)
}

type service struct {
	logger     *logrus.Logger
	repo       publication.Repository
	contents   content.Repository
	publishers map[publication.Platform]Publisher
	exporter   events.Exporter
	now        func() time.Time
}

func NewService(
	logger *logrus.Logger,
	repo publication.Repository,
	contents content.Repository,
	publishers map[publication.Platform]Publisher,
	exporter events.Exporter,
) Service {
	if exporter == nil {
		exporter = events.NewNoopExporter()
	}
	return &service{
		logger:     logger,
		repo:       repo,
		contents:   contents,
		publishers: publishers,
		exporter:   exporter,
		now:        time.Now,
	}
}

func (s *service) Publish(ctx context.Context, req *PublishRequest) (*publication.Publication, error) {
	platform, err := publication.ParsePlatform(req.Platform)
	if err != nil {
		return nil, err
	}
	gc, err := s.contents.GetByID(ctx, req.ContentID)
	if err != nil {
		return nil, err
	}
	contentID := gc.ID
	return s.process(ctx, &publication.Publication{
		ContentID:         &contentID,
		Content:           gc.Content,
		Title:             gc.Title,
		Platform:          platform,
		ScheduleTime:      req.ScheduleTime,
		AdditionalOptions: types.JSONMap(req.AdditionalOptions),
	})
}

func (s *service) PublishDirect(ctx context.Context, req *DirectPublishRequest) (*publication.Publication, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, domain.ErrEmptyContent
	}
	platform, err := publication.ParsePlatform(req.Platform)
	if err != nil {
		return nil, err
	}
	return s.process(ctx, &publication.Publication{
		Content:           req.Content,
		Title:             req.Title,
		MediaURLs:         types.StringArray(req.MediaURLs),
		Platform:          platform,
		ScheduleTime:      req.ScheduleTime,
		AdditionalOptions: types.JSONMap(req.AdditionalOptions),
	})
}

func (s *service) process(ctx context.Context, p *publication.Publication) (*publication.Publication, error) {
	now := s.now().UTC()
	p.ID = uuid.New()
	p.CreatedAt = now

	switch {
	case p.ScheduleTime != nil && p.ScheduleTime.After(now):
		p.Status = publication.StatusScheduled
	default:
		s.publishNow(ctx, p, now)
	}

	if err := s.repo.Save(ctx, p); err != nil {
		s.logger.WithError(err).WithField("publication_id", p.ID).Error("failed to save publication")
		return nil, fmt.Errorf("failed to save publication: %w", err)
	}
	prometheus.PublicationTotal.WithLabelValues(string(p.Platform), string(p.Status)).Inc()

	evt := &events.Event{
		ID:         uuid.NewString(),
		Type:       events.PublicationCreated,
		Key:        p.ID.String(),
		OccurredAt: now,
		Data: map[string]interface{}{
			"publication_id":    p.ID,
			"content_id":        p.ContentID,
			"platform":          p.Platform,
			"status":            p.Status,
			"platform_post_url": p.PlatformPostURL,
		},
	}
	if err := s.exporter.Export(ctx, evt); err != nil {
		s.logger.WithError(err).WithField("publication_id", p.ID).Warn("failed to export publication event")
	}
	return p, nil
}

func (s *service) publishNow(ctx context.Context, p *publication.Publication, now time.Time) {
	publisher, ok := s.publishers[p.Platform]
	if !ok {
		p.Status = publication.StatusFailed
		p.ErrorMessage = fmt.Sprintf("no publisher for platform %s", p.Platform)
		return
	}
	postID, postURL, err := publisher.Publish(ctx, p)
	if err != nil {
		s.logger.WithError(err).WithField("platform", p.Platform).Warn("publication failed")
		p.Status = publication.StatusFailed
		p.ErrorMessage = err.Error()
		return
	}
	p.Status = publication.StatusPublished
	p.PlatformPostID = postID
	p.PlatformPostURL = postURL
	p.PublishedAt = &now
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*publication.Publication, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByContent(ctx context.Context, contentID uuid.UUID) ([]*publication.Publication, error) {
	return s.repo.ListByContent(ctx, contentID)
}

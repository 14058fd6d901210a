package publication

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/domain/publication"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const twitterMaxRunes = 280

var (
	ErrContentTooLong = errors.New("content exceeds the platform limit")
	ErrMediaRequired  = errors.New("platform requires at least one media URL")
)

// Publisher posts to one platform and returns the post id and URL.
type Publisher interface {
	Publish(ctx context.Context, p *publication.Publication) (postID, postURL string, err error)
}

var postURLs = map[publication.Platform]string{
	publication.LinkedIn:  "https://www.linkedin.com/feed/update/urn:li:share:%s",
	publication.Twitter:   "https://twitter.com/i/web/status/%s",
	publication.Facebook:  "https://www.facebook.com/%s",
	publication.Instagram: "https://www.instagram.com/p/%s",
	publication.Medium:    "https://medium.com/p/%s",
	publication.YouTube:   "https://www.youtube.com/watch?v=%s",
}

// simulatedPublisher records a post without calling the platform.
type simulatedPublisher struct {
	platform publication.Platform
	limiter  *rate.Limiter
}

// NewSimulatedPublishers returns one rate-limited publisher per platform.
func NewSimulatedPublishers(ratePerMinute int) map[publication.Platform]Publisher {
	if ratePerMinute <= 0 {
		ratePerMinute = 30
	}
	out := make(map[publication.Platform]Publisher, len(publication.Platforms))
	for _, p := range publication.Platforms {
		out[p] = &simulatedPublisher{
			platform: p,
			limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(ratePerMinute)), ratePerMinute),
		}
	}
	return out
}

func (s *simulatedPublisher) Publish(ctx context.Context, p *publication.Publication) (string, string, error) {
	if err := s.check(p); err != nil {
		return "", "", err
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return "", "", fmt.Errorf("%s rate limit: %w", s.platform, err)
	}
	postID := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	return postID, fmt.Sprintf(postURLs[s.platform], postID), nil
}

func (s *simulatedPublisher) check(p *publication.Publication) error {
	switch s.platform {
	case publication.Twitter:
		if n := len([]rune(p.Content)); n > twitterMaxRunes {
			return fmt.Errorf("%w: %d characters, twitter allows %d", ErrContentTooLong, n, twitterMaxRunes)
		}
	case publication.Instagram, publication.YouTube:
		if len(p.MediaURLs) == 0 {
			return fmt.Errorf("%w: %s", ErrMediaRequired, s.platform)
		}
	}
	return nil
}

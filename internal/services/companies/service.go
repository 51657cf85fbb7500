package companies

import (
	"context"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"

	"sustainalens/internal/domain"
	"sustainalens/internal/ports"
)

type Service struct {
	repo ports.CompanyRepository
	log  *zap.Logger
}

func New(repo ports.CompanyRepository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Register creates or updates a company. Registering the same external id
// twice updates the stored details.
func (s *Service) Register(ctx context.Context, in ports.CompanyInput) (domain.Company, error) {
	in.ExternalID = strings.TrimSpace(in.ExternalID)
	in.Name = strings.TrimSpace(in.Name)
	if in.ExternalID == "" {
		return domain.Company{}, errors.Mark(errors.New("company id is required"), ports.ErrInvalidInput)
	}
	if in.Name == "" {
		in.Name = in.ExternalID
	}
	c := domain.Company{
		ExternalID: in.ExternalID,
		Name:       in.Name,
		Sector:     strings.TrimSpace(in.Sector),
	}
	if in.Website != "" {
		website := in.Website
		registrable, err := RegistrableDomain(website)
		if err != nil {
			return domain.Company{}, errors.Mark(errors.Wrapf(err, "website %q", website), ports.ErrInvalidInput)
		}
		c.Website = &website
		c.RegistrableDomain = &registrable
	}
	saved, err := s.repo.UpsertCompany(ctx, c)
	if err != nil {
		return domain.Company{}, errors.Wrap(err, "save company")
	}
	s.log.Info("company registered", zap.String("company", saved.ExternalID), zap.Stringp("domain", saved.RegistrableDomain))
	return saved, nil
}

func (s *Service) Get(ctx context.Context, externalID string) (domain.Company, error) {
	return s.repo.GetCompany(ctx, externalID)
}

// RegistrableDomain reduces a website to its eTLD+1, falling back to the
// host for names publicsuffix does not recognise.
func RegistrableDomain(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", errors.New("no host")
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host, nil
	}
	return registrable, nil
}

package scrape

import (
	"jobsweep/internal/config"
	"jobsweep/internal/scrape/email"
	"jobsweep/internal/scrape/greenhouse"
	"jobsweep/internal/scrape/lever"
	"jobsweep/internal/scrape/smartrecruiters"
	"jobsweep/internal/scrape/util"
)

// BuildRegistry assembles the enabled sources in their fixed declared order:
// greenhouse, lever, smartrecruiters, email. imapPassword is only consulted
// when the email source is enabled.
func BuildRegistry(cfg config.Config, imapPassword string) (*Registry, error) {
	limiter := util.NewHostLimiter(2, 4)
	reg := NewRegistry()

	if cfg.Sources.Greenhouse.Enabled {
		gh := greenhouse.New(greenhouse.Config{
			Companies: mapGreenhouseCompanies(cfg.Sources.Greenhouse.Companies),
		}, limiter)
		if err := reg.Register(gh); err != nil {
			return nil, err
		}
	}
	if cfg.Sources.Lever.Enabled {
		lv := lever.New(lever.Config{
			Companies: mapLeverCompanies(cfg.Sources.Lever.Companies),
		}, limiter)
		if err := reg.Register(lv); err != nil {
			return nil, err
		}
	}
	if cfg.Sources.SmartRecruiters.Enabled {
		sr := smartrecruiters.New(smartrecruiters.Config{
			Companies: mapSmartRecruitersCompanies(cfg.Sources.SmartRecruiters.Companies),
		}, limiter)
		if err := reg.Register(sr); err != nil {
			return nil, err
		}
	}
	if cfg.Sources.Email.Enabled {
		em := email.New(email.Config{
			Host:       cfg.Sources.Email.IMAPHost,
			Port:       cfg.Sources.Email.IMAPPort,
			Username:   cfg.Sources.Email.Username,
			Password:   imapPassword,
			Mailbox:    cfg.Sources.Email.Mailbox,
			SubjectAny: cfg.Sources.Email.SearchSubjectAny,
		})
		if err := reg.Register(em); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func mapGreenhouseCompanies(in []config.Company) []greenhouse.Company {
	out := make([]greenhouse.Company, 0, len(in))
	for _, c := range in {
		out = append(out, greenhouse.Company{Slug: c.Slug, Name: c.Name})
	}
	return out
}

func mapLeverCompanies(in []config.Company) []lever.Company {
	out := make([]lever.Company, 0, len(in))
	for _, c := range in {
		out = append(out, lever.Company{Slug: c.Slug, Name: c.Name})
	}
	return out
}

func mapSmartRecruitersCompanies(in []config.Company) []smartrecruiters.Company {
	out := make([]smartrecruiters.Company, 0, len(in))
	for _, c := range in {
		out = append(out, smartrecruiters.Company{Slug: c.Slug, Name: c.Name})
	}
	return out
}

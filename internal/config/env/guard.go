package env

import (
	"errors"
	"fmt"
	"os"

	"civic_backend/internal/config"

	"gopkg.in/yaml.v3"
)

type guardYAML struct {
	Guard struct {
		LoginPath      string `yaml:"login_path"`
		OnboardingPath string `yaml:"onboarding_path"`
		DashboardPath  string `yaml:"dashboard_path"`
		RedirectParam  string `yaml:"redirect_param"`

		Protected           []string `yaml:"protected"`
		UnauthenticatedOnly []string `yaml:"unauthenticated_only"`
		OrgCreation         []string `yaml:"org_creation"`
		Public              []string `yaml:"public"`
		Excluded            []string `yaml:"excluded"`
	} `yaml:"guard"`
}

type guardConfig struct {
	loginPath      string
	onboardingPath string
	dashboardPath  string
	redirectParam  string

	protected   []string
	unauthOnly  []string
	orgCreation []string
	public      []string
	excluded    []string
}

// NewGuardConfigFromYAML - loads the static route table for the edge guard.
// An empty or incomplete table is a startup error, never a runtime one.
func NewGuardConfigFromYAML(path string) (config.GuardConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read guard config: %w", err)
	}

	var parsed guardYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse guard config: %w", err)
	}

	g := parsed.Guard
	if g.LoginPath == "" || g.OnboardingPath == "" || g.DashboardPath == "" {
		return nil, errors.New("guard config missing redirect targets")
	}
	if len(g.Protected) == 0 {
		return nil, errors.New("guard config has no protected paths")
	}
	if g.RedirectParam == "" {
		g.RedirectParam = "redirect"
	}

	return &guardConfig{
		loginPath:      g.LoginPath,
		onboardingPath: g.OnboardingPath,
		dashboardPath:  g.DashboardPath,
		redirectParam:  g.RedirectParam,
		protected:      g.Protected,
		unauthOnly:     g.UnauthenticatedOnly,
		orgCreation:    g.OrgCreation,
		public:         g.Public,
		excluded:       g.Excluded,
	}, nil
}

func (cfg *guardConfig) LoginPath() string      { return cfg.loginPath }
func (cfg *guardConfig) OnboardingPath() string { return cfg.onboardingPath }
func (cfg *guardConfig) DashboardPath() string  { return cfg.dashboardPath }
func (cfg *guardConfig) RedirectParam() string  { return cfg.redirectParam }

func (cfg *guardConfig) ProtectedPaths() []string           { return cfg.protected }
func (cfg *guardConfig) UnauthenticatedOnlyPaths() []string { return cfg.unauthOnly }
func (cfg *guardConfig) OrgCreationPaths() []string         { return cfg.orgCreation }
func (cfg *guardConfig) PublicPaths() []string              { return cfg.public }
func (cfg *guardConfig) ExcludedPrefixes() []string         { return cfg.excluded }

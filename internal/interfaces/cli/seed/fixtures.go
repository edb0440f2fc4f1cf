// Package seed loads organizations, tickets and votes from a YAML fixture
// file through the same use cases the HTTP API uses.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	orgDTO "pulseboard/internal/application/organization/dto"
	orgUsecases "pulseboard/internal/application/organization/usecases"
	ticketDTO "pulseboard/internal/application/ticket/dto"
	ticketUsecases "pulseboard/internal/application/ticket/usecases"
	voteUsecases "pulseboard/internal/application/vote/usecases"
	"pulseboard/internal/domain/access"
	"pulseboard/internal/shared/logger"
)

type Fixtures struct {
	Organizations []OrganizationFixture `yaml:"organizations"`
}

type OrganizationFixture struct {
	Owner       string          `yaml:"owner"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Website     string          `yaml:"website"`
	GitHub      string          `yaml:"github"`
	Tickets     []TicketFixture `yaml:"tickets"`
}

type TicketFixture struct {
	Reporter    string   `yaml:"reporter"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tag         string   `yaml:"tag"`
	Priority    string   `yaml:"priority"`
	Status      string   `yaml:"status"`
	Voters      []string `yaml:"voters"`
}

func LoadFile(path string) (*Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Fixtures, error) {
	var fixtures Fixtures
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	for i, org := range fixtures.Organizations {
		if org.Owner == "" {
			return nil, fmt.Errorf("organization %d (%q): owner is required", i, org.Name)
		}
		for j, t := range org.Tickets {
			if t.Reporter == "" {
				return nil, fmt.Errorf("organization %q ticket %d: reporter is required", org.Name, j)
			}
		}
	}
	return &fixtures, nil
}

type CreateOrganizationExecutor interface {
	Execute(ctx context.Context, cmd orgUsecases.CreateOrganizationCommand) (*orgDTO.OrganizationDTO, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd ticketUsecases.CreateTicketCommand) (*ticketDTO.TicketDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ticketUsecases.ChangeStatusCommand) (*ticketDTO.TicketDTO, error)
}

type ToggleVoteExecutor interface {
	Execute(ctx context.Context, cmd voteUsecases.ToggleVoteCommand) (*voteUsecases.ToggleVoteResult, error)
}

// Summary counts what a run inserted.
type Summary struct {
	Organizations int
	Tickets       int
	Votes         int
}

type Seeder struct {
	createOrgUC    CreateOrganizationExecutor
	createTicketUC CreateTicketExecutor
	changeStatusUC ChangeStatusExecutor
	toggleVoteUC   ToggleVoteExecutor
	logger         logger.Interface
}

func NewSeeder(
	createOrgUC CreateOrganizationExecutor,
	createTicketUC CreateTicketExecutor,
	changeStatusUC ChangeStatusExecutor,
	toggleVoteUC ToggleVoteExecutor,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		createOrgUC:    createOrgUC,
		createTicketUC: createTicketUC,
		changeStatusUC: changeStatusUC,
		toggleVoteUC:   toggleVoteUC,
		logger:         logger,
	}
}

// Run stops at the first failure. Rows inserted before it stay.
func (s *Seeder) Run(ctx context.Context, fixtures *Fixtures) (Summary, error) {
	var summary Summary

	for _, orgFx := range fixtures.Organizations {
		owner := &access.Caller{ID: orgFx.Owner}
		org, err := s.createOrgUC.Execute(ctx, orgUsecases.CreateOrganizationCommand{
			Caller:      owner,
			Name:        orgFx.Name,
			Description: orgFx.Description,
			Website:     orgFx.Website,
			GitHub:      orgFx.GitHub,
		})
		if err != nil {
			return summary, fmt.Errorf("organization %q: %w", orgFx.Name, err)
		}
		summary.Organizations++

		for _, tFx := range orgFx.Tickets {
			t, err := s.createTicketUC.Execute(ctx, ticketUsecases.CreateTicketCommand{
				Caller:         &access.Caller{ID: tFx.Reporter},
				OrganizationID: org.ID,
				Title:          tFx.Title,
				Description:    tFx.Description,
				Tag:            tFx.Tag,
				Priority:       tFx.Priority,
			})
			if err != nil {
				return summary, fmt.Errorf("ticket %q: %w", tFx.Title, err)
			}
			summary.Tickets++

			if tFx.Status != "" {
				if _, err := s.changeStatusUC.Execute(ctx, ticketUsecases.ChangeStatusCommand{
					Caller:   owner,
					TicketID: t.ID,
					Status:   tFx.Status,
				}); err != nil {
					return summary, fmt.Errorf("ticket %q status: %w", tFx.Title, err)
				}
			}

			for _, voter := range tFx.Voters {
				if _, err := s.toggleVoteUC.Execute(ctx, voteUsecases.ToggleVoteCommand{
					Caller:   &access.Caller{ID: voter},
					TicketID: t.ID,
				}); err != nil {
					return summary, fmt.Errorf("vote by %s on %q: %w", voter, tFx.Title, err)
				}
				summary.Votes++
			}
		}

		s.logger.Infow("organization seeded", "organization_id", org.ID, "tickets", len(orgFx.Tickets))
	}

	return summary, nil
}

package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/service"

	"github.com/cucumber/godog"
)

// lifecycleScenario holds the state of one feature scenario
type lifecycleScenario struct {
	t        *testing.T
	env      *testEnv
	parts    map[string]*service.PartResponse
	aircraft map[string]*service.AircraftResponse
	recycled *service.RecycleResult
	err      error
}

func (s *lifecycleScenario) reset() {
	s.env = newTestEnv(s.t)
	s.parts = make(map[string]*service.PartResponse)
	s.aircraft = make(map[string]*service.AircraftResponse)
	s.recycled = nil
	s.err = nil
}

func (s *lifecycleScenario) part(serial string) (*service.PartResponse, error) {
	part, ok := s.parts[serial]
	if !ok {
		return nil, fmt.Errorf("part %q was never produced", serial)
	}
	return part, nil
}

func (s *lifecycleScenario) teamProduces(team, partType, serial, model string) error {
	part, err := s.env.ledger.Produce(context.Background(), s.env.fixture.Actor(models.TeamCode(team)), &service.ProducePartRequest{
		PartType:      models.PartTypeCode(partType),
		AircraftModel: models.AircraftModelCode(model),
		SerialNumber:  serial,
	})
	s.err = err
	if err == nil {
		s.parts[serial] = part
	}
	return nil
}

func (s *lifecycleScenario) teamAssembles(team, tail, model, wing, fuselage, tailPart, avionics string) error {
	var slots service.SlotAssignments
	for slot, serial := range map[models.Slot]string{
		models.SlotWing:     wing,
		models.SlotFuselage: fuselage,
		models.SlotTail:     tailPart,
		models.SlotAvionics: avionics,
	} {
		part, err := s.part(serial)
		if err != nil {
			return err
		}
		slots.Set(slot, part.ID)
	}

	aircraft, err := s.env.assembly.Assemble(context.Background(), s.env.fixture.Actor(models.TeamCode(team)), &service.AssembleRequest{
		TailNumber:      tail,
		AircraftModel:   models.AircraftModelCode(model),
		SlotAssignments: slots,
	})
	s.err = err
	if err == nil {
		s.aircraft[tail] = aircraft
	}
	return nil
}

func (s *lifecycleScenario) teamRecycles(team, serial string) error {
	part, err := s.part(serial)
	if err != nil {
		return err
	}
	s.recycled, s.err = s.env.ledger.Recycle(context.Background(), s.env.fixture.Actor(models.TeamCode(team)), part.ID)
	return nil
}

func (s *lifecycleScenario) operationSucceeds() error {
	if s.err != nil {
		return fmt.Errorf("expected success, got %v", s.err)
	}
	return nil
}

func (s *lifecycleScenario) operationNotAuthorized() error {
	if !apperrors.IsAuthorization(s.err) {
		return fmt.Errorf("expected an authorization error, got %v", s.err)
	}
	return nil
}

func (s *lifecycleScenario) operationFailsValidation(field, fragment string) error {
	if !apperrors.IsValidation(s.err) {
		return fmt.Errorf("expected a validation error, got %v", s.err)
	}
	var verr *apperrors.ValidationError
	if !errors.As(s.err, &verr) {
		return fmt.Errorf("validation error has unexpected type %T", s.err)
	}
	for _, message := range verr.FieldErrors()[field] {
		if strings.Contains(message, fragment) {
			return nil
		}
	}
	return fmt.Errorf("no %q finding on %s in %v", fragment, field, verr.FieldErrors())
}

func (s *lifecycleScenario) partHasStatus(serial, status string) error {
	part, err := s.part(serial)
	if err != nil {
		return err
	}
	current, err := s.env.ledger.GetByID(context.Background(), part.ID)
	if err != nil {
		return err
	}
	if current.Status != models.PartStatus(status) {
		return fmt.Errorf("part %s has status %s, want %s", serial, current.Status, status)
	}
	return nil
}

func (s *lifecycleScenario) aircraftHasParts(tail string, count int) error {
	created, ok := s.aircraft[tail]
	if !ok {
		return fmt.Errorf("aircraft %q was never assembled", tail)
	}
	aircraft, err := s.env.assembly.GetByID(context.Background(), created.ID)
	if err != nil {
		return err
	}
	if len(aircraft.Parts) != count {
		return fmt.Errorf("aircraft %s has %d parts, want %d", tail, len(aircraft.Parts), count)
	}
	return nil
}

func (s *lifecycleScenario) alreadyRecycled() error {
	if s.recycled == nil || !s.recycled.AlreadyRecycled {
		return fmt.Errorf("expected an already recycled result, got %+v", s.recycled)
	}
	return nil
}

func TestLifecycleFeatures(t *testing.T) {
	scenario := &lifecycleScenario{t: t}

	suite := godog.TestSuite{
		Name: "lifecycle",
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
				scenario.reset()
				return ctx, nil
			})

			sc.Step(`^team "([^"]*)" produces a "([^"]*)" part "([^"]*)" for model "([^"]*)"$`, scenario.teamProduces)
			sc.Step(`^team "([^"]*)" assembles "([^"]*)" of model "([^"]*)" from "([^"]*)", "([^"]*)", "([^"]*)" and "([^"]*)"$`, scenario.teamAssembles)
			sc.Step(`^team "([^"]*)" recycles part "([^"]*)"$`, scenario.teamRecycles)
			sc.Step(`^the operation succeeds$`, scenario.operationSucceeds)
			sc.Step(`^the operation is not authorized$`, scenario.operationNotAuthorized)
			sc.Step(`^the operation fails validation on "([^"]*)" mentioning "([^"]*)"$`, scenario.operationFailsValidation)
			sc.Step(`^part "([^"]*)" has status "([^"]*)"$`, scenario.partHasStatus)
			sc.Step(`^aircraft "([^"]*)" has (\d+) parts$`, scenario.aircraftHasParts)
			sc.Step(`^the part was already recycled$`, scenario.alreadyRecycled)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("lifecycle feature scenarios failed")
	}
}

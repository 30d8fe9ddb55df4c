package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/config"
	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/loader"
	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/scheduler"
)

type SchedulerHandler interface {
	Policies(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
	SimulatePolicy(policy scheduler.Policy) fiber.Handler
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// NewApp builds the HTTP application. Request logs go to accessLog when it is not nil.
func NewApp(cfg *config.SchedulerConfig, accessLog io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpusim",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	if accessLog != nil {
		app.Use(logger.New(logger.Config{Output: accessLog}))
	}

	Register(app.Group("/api/v1"), NewSchedulerHandlerImpl(cfg))
	return app
}

// Register mounts the scheduler routes on router.
func Register(router fiber.Router, h SchedulerHandler) {
	router.Get("/policies", h.Policies)
	router.Post("/simulate", h.Simulate)
	router.Post("/compare", h.Compare)
	for _, policy := range scheduler.Policies {
		router.Post("/"+policy.String(), h.SimulatePolicy(policy))
	}
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	names := make([]string, len(scheduler.Policies))
	for i, p := range scheduler.Policies {
		names[i] = p.String()
	}
	return ctx.JSON(PoliciesResponse{Policies: names, Default: s.config.Policy.String()})
}

func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	request, ok := s.parse(ctx)
	if !ok {
		return nil
	}

	policy := s.config.Policy
	if request.Policy != "" {
		var err error
		if policy, err = scheduler.ParsePolicy(request.Policy); err != nil {
			return s.fail(ctx, err)
		}
	}
	return s.run(ctx, request, policy)
}

func (s *SchedulerHandlerImpl) SimulatePolicy(policy scheduler.Policy) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		request, ok := s.parse(ctx)
		if !ok {
			return nil
		}
		return s.run(ctx, request, policy)
	}
}

func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	request, ok := s.parse(ctx)
	if !ok {
		return nil
	}
	processes, err := s.processes(request)
	if err != nil {
		return s.fail(ctx, err)
	}
	results, err := scheduler.Compare(processes, s.quantum(request))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(CompareResponse{Results: results})
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, request *ScheduleRequest, policy scheduler.Policy) error {
	processes, err := s.processes(request)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := scheduler.Simulate(processes, policy, s.quantum(request))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(result)
}

// parse decodes the body and writes the error response itself when it cannot.
func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (*ScheduleRequest, bool) {
	request := new(ScheduleRequest)
	if err := ctx.BodyParser(request); err != nil {
		_ = ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request format"})
		return nil, false
	}
	return request, true
}

func (s *SchedulerHandlerImpl) processes(request *ScheduleRequest) ([]scheduler.Process, error) {
	raw := bytes.TrimSpace(request.Processes)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: request has no processes", scheduler.ErrInvalidProcessCount)
	}
	return loader.LoadJSON(raw)
}

func (s *SchedulerHandlerImpl) quantum(request *ScheduleRequest) int64 {
	if request.Quantum != nil {
		return *request.Quantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, loader.ErrMalformed) {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request format"})
	}
	kind := scheduler.Kind(err)
	if kind == "" {
		log.Println("simulation failed:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "can not process request"})
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error(), Kind: kind})
}

// Package httpadapter exposes the game use case over HTTP. All command
// endpoints reply with the use case's Outcome envelope; errors use a uniform
// {"error": {code, message}} body.
package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"megbase/internal/app/game"
	"megbase/internal/app/ports"
)

type Handler struct {
	Game *game.UseCase
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	g := s.Group("/api/game")
	g.POST("/new", h.newGame)
	g.POST("/day", h.advanceDay)
	g.GET("/state", h.state)
	g.POST("/save", h.save)
	g.POST("/load", h.load)
	g.GET("/saves", h.listSaves)
	g.DELETE("/saves/:name", h.deleteSave)

	base := s.Group("/api/base")
	base.POST("/build", h.build)
	base.POST("/alert/raise", h.raiseAlert)
	base.POST("/alert/lower", h.lowerAlert)

	s.POST("/api/personnel/hire", h.hire)
	s.POST("/api/personnel/dismiss", h.dismiss)
	s.POST("/api/missions/start", h.startMission)
	s.POST("/api/intel/investigate", h.investigate)
	s.POST("/api/intel/purify", h.purify)
	s.POST("/api/diplomacy/help", h.requestHelp)
	s.POST("/api/market/trade", h.trade)
}

type saveRequest struct {
	Name string `json:"name"`
}

type buildRequest struct {
	Ordinal int `json:"ordinal"`
}

type hireRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type dismissRequest struct {
	AgentID string `json:"agent_id"`
}

type startMissionRequest struct {
	Ordinal int    `json:"ordinal"`
	AgentID string `json:"agent_id"`
}

type investigateRequest struct {
	LocationID string `json:"location_id"`
	AgentID    string `json:"agent_id"`
}

type purifyRequest struct {
	AgentID string `json:"agent_id"`
}

type helpRequest struct {
	OrgID string `json:"org_id"`
	Kind  string `json:"kind"`
}

type tradeRequest struct {
	GoodID   string `json:"good_id"`
	OrgID    string `json:"org_id"`
	Quantity int    `json:"quantity"`
	Action   string `json:"action"`
}

func (h Handler) newGame(c context.Context, ctx *app.RequestContext) {
	h.outcome(ctx)(h.Game.NewGame(c))
}

func (h Handler) advanceDay(c context.Context, ctx *app.RequestContext) {
	h.outcome(ctx)(h.Game.AdvanceDay(c))
}

func (h Handler) state(c context.Context, ctx *app.RequestContext) {
	view, err := h.Game.State(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, view)
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	var body saveRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.outcome(ctx)(h.Game.Save(c, body.Name))
}

func (h Handler) load(c context.Context, ctx *app.RequestContext) {
	var body saveRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.outcome(ctx)(h.Game.Load(c, body.Name))
}

func (h Handler) listSaves(c context.Context, ctx *app.RequestContext) {
	infos, err := h.Game.ListSaves(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"saves": infos})
}

func (h Handler) deleteSave(c context.Context, ctx *app.RequestContext) {
	name := strings.TrimSpace(ctx.Param("name"))
	h.outcome(ctx)(h.Game.DeleteSave(c, name))
}

func (h Handler) build(c context.Context, ctx *app.RequestContext) {
	var body buildRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.outcome(ctx)(h.Game.Build(c, body.Ordinal))
}

func (h Handler) raiseAlert(c context.Context, ctx *app.RequestContext) {
	h.outcome(ctx)(h.Game.RaiseAlert(c))
}

func (h Handler) lowerAlert(c context.Context, ctx *app.RequestContext) {
	h.outcome(ctx)(h.Game.LowerAlert(c))
}

func (h Handler) hire(c context.Context, ctx *app.RequestContext) {
	var body hireRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if strings.TrimSpace(body.Name) == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "agent name required")
		return
	}
	h.outcome(ctx)(h.Game.Hire(c, body.Name, body.Role))
}

func (h Handler) dismiss(c context.Context, ctx *app.RequestContext) {
	var body dismissRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.outcome(ctx)(h.Game.Dismiss(c, body.AgentID))
}

func (h Handler) startMission(c context.Context, ctx *app.RequestContext) {
	var body startMissionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.outcome(ctx)(h.Game.StartMission(c, body.Ordinal, body.AgentID))
}

func (h Handler) investigate(c context.Context, ctx *app.RequestContext) {
	var body investigateRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.outcome(ctx)(h.Game.Investigate(c, body.LocationID, body.AgentID))
}

func (h Handler) purify(c context.Context, ctx *app.RequestContext) {
	var body purifyRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.outcome(ctx)(h.Game.Purify(c, body.AgentID))
}

func (h Handler) requestHelp(c context.Context, ctx *app.RequestContext) {
	var body helpRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.outcome(ctx)(h.Game.RequestHelp(c, body.OrgID, body.Kind))
}

func (h Handler) trade(c context.Context, ctx *app.RequestContext) {
	var body tradeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	buying := false
	switch body.Action {
	case "buy":
		buying = true
	case "sell":
	default:
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", `action must be "buy" or "sell"`)
		return
	}
	h.outcome(ctx)(h.Game.Trade(c, body.GoodID, body.OrgID, body.Quantity, buying))
}

// outcome renders a use case (Outcome, error) pair: errors map to status
// codes, refused commands come back as 200 with ok=false.
func (h Handler) outcome(ctx *app.RequestContext) func(game.Outcome, error) {
	return func(out game.Outcome, err error) {
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, out)
	}
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, game.ErrNoGame):
		writeErrorBody(ctx, consts.StatusConflict, "no_game", err.Error())
	case errors.Is(err, ports.ErrSaveNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "save_not_found", err.Error())
	case errors.Is(err, ports.ErrSchemaMismatch):
		writeErrorBody(ctx, consts.StatusConflict, "save_schema_mismatch", err.Error())
	case errors.Is(err, ports.ErrCatalogMissing):
		writeErrorBody(ctx, consts.StatusConflict, "catalog_missing", err.Error())
	case errors.Is(err, ports.ErrSaveCorrupt):
		writeErrorBody(ctx, consts.StatusConflict, "save_corrupt", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

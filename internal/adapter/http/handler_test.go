package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"megbase/internal/adapter/repo/memory"
	"megbase/internal/app/game"
	"megbase/internal/domain/catalog"
)

func newTestHandler(t *testing.T) Handler {
	t.Helper()
	uc := game.NewUseCase(memory.NewSaveRepo(), catalog.Default(), 42, slog.Default())
	return Handler{Game: uc}
}

func postJSON(body string) *app.RequestContext {
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(body))
	return ctx
}

func decodeResponse(t *testing.T, ctx *app.RequestContext, out any) {
	t.Helper()
	if err := json.Unmarshal(ctx.Response.Body(), out); err != nil {
		t.Fatalf("decode response %q: %v", ctx.Response.Body(), err)
	}
}

func TestStateWithoutGameConflicts(t *testing.T) {
	h := newTestHandler(t)
	ctx := &app.RequestContext{}

	h.state(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusConflict {
		t.Fatalf("status = %d, want %d", got, consts.StatusConflict)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeResponse(t, ctx, &body)
	if body.Error.Code != "no_game" {
		t.Fatalf("code = %q, want no_game", body.Error.Code)
	}
}

func TestNewGameThenState(t *testing.T) {
	h := newTestHandler(t)

	ctx := &app.RequestContext{}
	h.newGame(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("new game status = %d", got)
	}
	var out game.Outcome
	decodeResponse(t, ctx, &out)
	if !out.OK {
		t.Fatalf("outcome = %+v", out)
	}

	ctx = &app.RequestContext{}
	h.state(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("state status = %d", got)
	}
	var view game.StateView
	decodeResponse(t, ctx, &view)
	if view.Stats.Day != 1 || len(view.Pool) == 0 {
		t.Fatalf("view = day %d pool %d", view.Stats.Day, len(view.Pool))
	}
}

func TestTradeActionValidation(t *testing.T) {
	h := newTestHandler(t)
	h.newGame(context.Background(), &app.RequestContext{})

	ctx := postJSON(`{"good_id": "medical", "org_id": "meg", "quantity": 1, "action": "steal"}`)
	h.trade(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusBadRequest {
		t.Fatalf("status = %d, want %d", got, consts.StatusBadRequest)
	}
}

func TestInvalidJSONRejected(t *testing.T) {
	h := newTestHandler(t)
	h.newGame(context.Background(), &app.RequestContext{})

	ctx := postJSON(`{not json`)
	h.build(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusBadRequest {
		t.Fatalf("status = %d, want %d", got, consts.StatusBadRequest)
	}
}

func TestLoadMissingSaveNotFound(t *testing.T) {
	h := newTestHandler(t)
	h.newGame(context.Background(), &app.RequestContext{})

	ctx := postJSON(`{"name": "ghost"}`)
	h.load(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusNotFound {
		t.Fatalf("status = %d, want %d", got, consts.StatusNotFound)
	}
}

func TestRefusedCommandIsOKFalse(t *testing.T) {
	h := newTestHandler(t)
	h.newGame(context.Background(), &app.RequestContext{})

	// Hire with an unknown role is a refusal, not a transport error.
	ctx := postJSON(`{"name": "Sam", "role": "astronaut"}`)
	h.hire(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("status = %d, want %d", got, consts.StatusOK)
	}
	var out game.Outcome
	decodeResponse(t, ctx, &out)
	if out.OK {
		t.Fatalf("refusal reported ok")
	}
}

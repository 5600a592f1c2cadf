package main

import (
	"context"
)

// PingOutput reports liveness and the configured store driver
type PingOutput struct {
	Body struct {
		Message string `json:"message" example:"pong" doc:"Response message"`
		Store   string `json:"store" example:"memory" doc:"Enriched climb store driver"`
	}
}

func (app *App) handlePing(ctx context.Context, input *struct{}) (*PingOutput, error) {
	resp := &PingOutput{}
	resp.Body.Message = "pong"
	resp.Body.Store = app.cfg.Store.Driver
	return resp, nil
}

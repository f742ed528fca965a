package controller

import (
	"github.com/sharetube/roomdecor/pkg/wsrouter"
)

func (c controller) getWSRouter() *wsrouter.WSRouter {
	mux := wsrouter.New()
	mux.Use(c.wsRequestIdWSMw(), c.loggerWSMw())
	mux.OnError(c.writeError)

	// session
	wsrouter.Handle(mux, MessageGetState, c.handleGetState)
	wsrouter.Handle(mux, MessageShare, c.handleShare)

	// every reducer action
	for _, t := range c.reducer.Actions() {
		mux.HandleRaw(string(t), c.handleAction(t))
	}

	return mux
}

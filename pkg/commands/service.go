package commands

import (
	"tableflip.dev/dayboard/pkg/app"
	"tableflip.dev/dayboard/pkg/logging"
	"tableflip.dev/dayboard/pkg/store"
)

// newService wires config, logging, and persistence into an engine instance
// for a single command invocation.
func newService() (*app.Service, store.Config, error) {
	log, err := logging.New(output.Debug)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	p, err := store.Load(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	s, err := app.New(p, log)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

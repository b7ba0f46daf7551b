package model

import (
	logs "github.com/mosaicsoft/entitykit/log"
)

type ModuleConfig struct {
	ModuleID string     `json:"moduleId"`
	Title    string     `json:"title"`
	Log      *LogConfig `json:"log"`
}

type LogConfig struct {
	Level string `json:"level"`
}

type Module interface {
	ID() string
	Title() string
	Logger() Log
	Config() *ModuleConfig
	Dispatcher() EventDispatcher
	DomainService() *DomainService
}

//BaseModule wires the logger, dispatcher and domain service together from config.
//This is a basic implementation and can be overwritten to include additional collaborators
type BaseModule struct {
	id            string
	title         string
	logger        Log
	config        *ModuleConfig
	dispatcher    EventDispatcher
	domainService *DomainService
}

func (w *BaseModule) ID() string {
	return w.id
}

func (w *BaseModule) Title() string {
	return w.title
}

func (w *BaseModule) Logger() Log {
	return w.logger
}

func (w *BaseModule) Config() *ModuleConfig {
	return w.config
}

func (w *BaseModule) Dispatcher() EventDispatcher {
	return w.dispatcher
}

func (w *BaseModule) DomainService() *DomainService {
	return w.domainService
}

var NewModuleFromConfig = func(config *ModuleConfig, logger Log) (*BaseModule, error) {
	if logger == nil {
		level := "info"
		if config.Log != nil && config.Log.Level != "" {
			level = config.Log.Level
		}
		zlogger, err := logs.NewZap(level)
		if err != nil {
			return nil, NewError("error setting up logger", err)
		}
		logger = zlogger
	}

	dispatcher := &DefaultEventDispatcher{}
	return &BaseModule{
		id:            config.ModuleID,
		title:         config.Title,
		logger:        logger,
		config:        config,
		dispatcher:    dispatcher,
		domainService: NewDomainService(dispatcher, logger),
	}, nil
}

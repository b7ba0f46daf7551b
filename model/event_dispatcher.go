package model

import (
	"sync"

	"golang.org/x/net/context"
)

type DefaultEventDispatcher struct {
	handlers        []EventHandler
	handlerPanicked bool
	dispatch        sync.Mutex
}

func (e *DefaultEventDispatcher) Dispatch(ctx context.Context, event Event) []error {
	//mutex helps keep state between routines
	var errors []error

	e.dispatch.Lock()
	defer e.dispatch.Unlock()
	var wg sync.WaitGroup
	var errLock sync.Mutex
	for i := 0; i < len(e.handlers); i++ {
		handler := e.handlers[i]
		wg.Add(1)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					e.handlerPanicked = true
				}
				wg.Done()
			}()

			err := handler(ctx, event)
			if err != nil {
				errLock.Lock()
				errors = append(errors, err)
				errLock.Unlock()
			}

		}()
	}
	wg.Wait()
	return errors
}

func (e *DefaultEventDispatcher) AddSubscriber(handler EventHandler) {
	e.handlers = append(e.handlers, handler)
}

func (e *DefaultEventDispatcher) GetSubscribers() []EventHandler {
	return e.handlers
}

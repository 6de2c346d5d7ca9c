package main

import (
	"bytes"
	"fmt"
	json "github.com/bytedance/sonic"
	"io"
	"net/http"
	"sheetCalc/contracts"
	"sync"
	"time"
)

const DefaultWebhookWorkersCount = 5

const webhookQueueSize = 20

type WebhookSendCommand struct {
	Webhook  string
	Snapshot *contracts.SheetSnapshot
}

type WebhookDispatcher struct {
	queue        chan WebhookSendCommand
	webhooks     map[string]string
	mutex        sync.RWMutex
	closed       bool
	workersCount int
	workers      sync.WaitGroup
	logWriter    io.Writer
}

func NewWebhookDispatcher(workersCount int, logWriter io.Writer) *WebhookDispatcher {
	if workersCount < 1 {
		workersCount = DefaultWebhookWorkersCount
	}

	return &WebhookDispatcher{
		queue:        make(chan WebhookSendCommand, webhookQueueSize),
		webhooks:     map[string]string{},
		workersCount: workersCount,
		logWriter:    logWriter,
	}
}

// SetWebhookUrl subscribes webhookUrl to updates of the sheet, an empty url unsubscribes.
func (manager *WebhookDispatcher) SetWebhookUrl(canonicalSheetId string, webhookUrl string) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if webhookUrl == "" {
		delete(manager.webhooks, canonicalSheetId)
	} else {
		manager.webhooks[canonicalSheetId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(canonicalSheetId string) string {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	return manager.webhooks[canonicalSheetId]
}

func (manager *WebhookDispatcher) Notify(canonicalSheetId string, snapshot *contracts.SheetSnapshot) {
	if manager.GetWebhookUrl(canonicalSheetId) == "" {
		return
	}

	go manager.addToQueue(canonicalSheetId, snapshot)
}

func (manager *WebhookDispatcher) addToQueue(canonicalSheetId string, snapshot *contracts.SheetSnapshot) {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	if manager.closed {
		return
	}

	if webhook, ok := manager.webhooks[canonicalSheetId]; ok {
		manager.queue <- WebhookSendCommand{
			Webhook:  webhook,
			Snapshot: snapshot,
		}
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < manager.workersCount; i++ {
		manager.workers.Add(1)
		go manager.runWebhookSenderWorker()
	}
}

// Close stops accepting notifications and waits until the queued ones are sent.
func (manager *WebhookDispatcher) Close() {
	manager.mutex.Lock()
	if !manager.closed {
		manager.closed = true
		close(manager.queue)
	}
	manager.mutex.Unlock()

	manager.workers.Wait()
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	defer manager.workers.Done()

	client := &http.Client{
		Timeout: time.Second * 5,
	}

	for command := range manager.queue {
		payload, err := json.Marshal(command.Snapshot)
		if err != nil {
			_, _ = fmt.Fprintf(manager.logWriter, "Webhook payload error: %s\n", err)
			continue
		}

		response, err := client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
		if err != nil {
			_, _ = fmt.Fprintf(manager.logWriter, "Webhook send error: %s\n", err)
			continue
		}

		_ = response.Body.Close()
		if response.StatusCode >= 300 {
			_, _ = fmt.Fprintf(manager.logWriter, "Unexpected webhook response HTTP status: %s\n", response.Status)
		}
	}
}

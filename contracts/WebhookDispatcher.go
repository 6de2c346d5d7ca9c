package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(canonicalSheetId string, webhookUrl string)
	GetWebhookUrl(canonicalSheetId string) string
	Notify(canonicalSheetId string, snapshot *SheetSnapshot)
	Start()
	Close()
}

/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package telemetry

// Event names.
const (
	EventPlanGenerated  = "plan_generated"
	EventPlanFailed     = "plan_failed"
	EventQuoteServed    = "quote_served"
	EventNarration      = "narration_requested"
	EventImageGenerated = "image_generated"
	EventPlanExported   = "plan_exported"
)

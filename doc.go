// Package itemservice validates catalogue items and reports violations in a
// form suitable for redisplaying an input form.
//
// A Service ties together the packages that do the work:
//
//   - pkg/binder decodes form values or JSON into an item.Item, recording
//     values that do not convert as binding failures.
//   - pkg/validator runs the item rules for a profile (item.SaveProfile or
//     item.UpdateProfile) and collects violations in a Report.
//   - pkg/msgcodes expands each violation code into a chain of message
//     codes, most specific first.
//   - pkg/messages picks the first code in that chain with a message.
//
// Basic usage:
//
//	cfg, err := itemservice.LoadConfig()
//	if err != nil {
//		return err
//	}
//	svc, err := itemservice.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	it, report, err := svc.Bind(ctx, r.PostForm, item.SaveProfile)
//	if err != nil {
//		return err // misconfiguration only
//	}
//	if report.HasErrors() {
//		msgs := svc.Messages(report)
//		price := report.FieldValue("price") // input as the user typed it
//		...
//	}
//
// Violations are never returned as errors. Errors are reserved for
// configuration mistakes and for JSON bodies that do not decode.
//
// Configuration is read from the environment:
//
//	APP_NAME, APP_ENV, LOG_LEVEL, LOG_FORMAT
//	ITEM_TOTAL_PRICE_FLOOR    smallest price × quantity (10000)
//	ITEM_TOTAL_PRICE_RULE     expression replacing the floor check
//	ITEM_MESSAGES_FILE        YAML or JSON messages merged over the defaults
//	ITEM_MESSAGE_CODE_PREFIX  prefix for generated message codes
//	ITEM_MESSAGE_CODE_FORMAT  "prefix" or "postfix"
package itemservice

package sso

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// fieldKind classifies how a recognized field is rendered on the wire.
type fieldKind int

const (
	kindString fieldKind = iota
	kindBool
	kindList
)

// fieldKinds is the closed set of field names the protocol recognizes.
// Anything outside this table is dropped during encoding.
var fieldKinds = map[string]fieldKind{
	"avatar_url":             kindString,
	"bio":                    kindString,
	"card_background_url":    kindString,
	"email":                  kindString,
	"external_id":            kindString,
	"locale":                 kindString,
	"name":                   kindString,
	"nonce":                  kindString,
	"profile_background_url": kindString,
	"return_sso_url":         kindString,
	"title":                  kindString,
	"username":               kindString,
	"website":                kindString,

	"admin":                    kindBool,
	"avatar_force_update":      kindBool,
	"locale_force_update":      kindBool,
	"moderator":                kindBool,
	"require_activation":       kindBool,
	"suppress_welcome_message": kindBool,

	"add_groups":    kindList,
	"groups":        kindList,
	"remove_groups": kindList,
}

// fieldOrder fixes the emission order so identical inputs always serialize to
// identical bytes. Decoding is order-independent, so any stable order works.
var fieldOrder = []string{
	"nonce",
	"email",
	"external_id",
	"username",
	"name",
	"avatar_url",
	"avatar_force_update",
	"bio",
	"card_background_url",
	"profile_background_url",
	"website",
	"title",
	"locale",
	"locale_force_update",
	"admin",
	"moderator",
	"groups",
	"add_groups",
	"remove_groups",
	"require_activation",
	"suppress_welcome_message",
}

// encodeField renders a single recognized field as a query-string fragment.
// The second return reports whether the field is emitted at all:
//   - string fields are always emitted, even when empty
//   - boolean fields are emitted only when the value is exactly true
//   - list fields are emitted comma-joined, only when non-empty
//
// A value of the wrong shape logs a warning and is omitted; it never fails
// the surrounding operation.
func encodeField(name string, kind fieldKind, value any, log *slog.Logger) (string, bool) {
	switch kind {
	case kindBool:
		b, ok := value.(bool)
		if !ok {
			log.Warn("dropping sso field: expected boolean value",
				slog.String("field", name), slog.String("type", fmt.Sprintf("%T", value)))
			return "", false
		}
		if !b {
			return "", false
		}
		return name + "=true", true
	case kindList:
		items, ok := stringList(value)
		if !ok {
			log.Warn("dropping sso field: expected list value",
				slog.String("field", name), slog.String("type", fmt.Sprintf("%T", value)))
			return "", false
		}
		if len(items) == 0 {
			return "", false
		}
		return name + "=" + url.QueryEscape(strings.Join(items, ",")), true
	default:
		return name + "=" + url.QueryEscape(fmt.Sprint(value)), true
	}
}

func stringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		items := make([]string, len(v))
		for i, e := range v {
			items[i] = fmt.Sprint(e)
		}
		return items, true
	}
	return nil, false
}

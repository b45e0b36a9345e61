package l10n

import (
	"fmt"

	"github.com/snapcore/go-gettext"
)

var domain gettext.TextDomain
var locale gettext.Catalog

func init() {
	domain = gettext.TextDomain{Name: "rationalize"}
	locale = domain.UserLocale()
}

// T localizes simple strings.
func T(str string, vars ...interface{}) string {
	translation := locale.Gettext(str)
	if len(vars) > 0 {
		translation = fmt.Sprintf(translation, vars...)
	}
	return translation
}

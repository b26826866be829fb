package bind

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("methodbind.bind")

package stubgen

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("methodbind.stubgen")

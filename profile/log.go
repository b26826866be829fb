package profile

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("methodbind.profile")

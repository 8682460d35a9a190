package zir

import (
	"fmt"

	"tlog.app/go/loc"
)

// panicf reports an encoding-contract violation. A wrong decode would
// silently corrupt everything downstream, so these are not recoverable
// errors.
func panicf(format string, args ...any) {
	name, file, line := loc.Caller(2).NameFileLine()

	panic(fmt.Sprintf("zir: "+format, args...) + fmt.Sprintf(" (%v at %v:%v)", name, file, line))
}

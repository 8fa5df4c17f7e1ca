package index

import (
	"github.com/pcj/mobyprogress"
)

func writeScanProgress(output mobyprogress.Output, current, total int, root string) {
	output.WriteProgress(mobyprogress.Progress{
		ID:      "scan",
		Action:  "scanning " + root,
		Current: int64(current),
		Total:   int64(total),
		Units:   "roots",
	})
}

func writeScanDone(output mobyprogress.Output, total int) {
	output.WriteProgress(mobyprogress.Progress{
		ID:         "scan",
		Action:     "scan complete",
		Current:    int64(total),
		Total:      int64(total),
		Units:      "roots",
		LastUpdate: true,
	})
}

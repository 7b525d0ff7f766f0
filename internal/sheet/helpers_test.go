package sheet

import "time"

func millis(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

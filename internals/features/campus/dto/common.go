package dto

import "strings"

// trimPtr: rapikan pointer string; whitespace-only dianggap tidak dikirim.
func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}

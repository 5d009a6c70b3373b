// Package logtail reads the tail of kiosk's log file and picks out the
// catalog requests recorded there.
//
// The catalog client logs one line per request with its path, X-Request-ID,
// status and timing. Requests parses those lines back into records so the UI
// can show recent traffic without a separate store:
//
//	reqs, err := logtail.Requests(cfg.LogFile, 50)
//	for _, r := range reqs {
//		fmt.Println(r.Path, r.Status, r.RequestID)
//	}
//
// Lines that are not request records are skipped. A missing log file is not
// an error.
package logtail

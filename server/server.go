// Standalone HTTP sidecar exposing validation as a JSON endpoint, for
// harnesses that keep solver output in memory instead of files.
package main

import (
	"encoding/json"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"wmibo/instance"
	"wmibo/solution"
	"wmibo/validate"
)

type Request struct {
	Instance string `json:"instance"`
	Solution string `json:"solution"`
}

// Response carries either a parse failure or a full validation report.
// Parse failures are part of the payload, not transport errors: the request
// itself succeeded.
type Response struct {
	Stage       string                `json:"stage"`
	ParseError  string                `json:"parse_error,omitempty"`
	OK          bool                  `json:"ok"`
	Diagnostics []validate.Diagnostic `json:"diagnostics"`
	Stats       *validate.Stats       `json:"stats,omitempty"`
}

const (
	ParseStage    = "parse"
	ValidateStage = "validate"
)

func handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Errorf("closing request body: %v", err)
		}
	}()

	pb, err := instance.Parse(strings.NewReader(req.Instance))
	if err != nil {
		log.Infof("instance parse error: %v", err)
		writeJSON(w, Response{
			Stage:       ParseStage,
			ParseError:  err.Error(),
			Diagnostics: []validate.Diagnostic{},
		})
		return
	}
	sol := solution.Parse(strings.NewReader(req.Solution))
	rep := validate.Validate(pb, sol)
	log.Infof("validated instance: ok=%t diagnostics=%d", rep.OK, len(rep.Diags))
	writeJSON(w, Response{
		Stage:       ValidateStage,
		OK:          rep.OK,
		Diagnostics: rep.Diags,
		Stats:       &rep.Stats,
	})
}

func writeJSON(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}

func main() {
	http.HandleFunc("/validate", handleValidate)
	log.Info("listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}

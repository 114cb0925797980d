package main

import (
	"fmt"
	"io"

	"wmibo/solution"
	"wmibo/validate"
)

// renderReport writes the human-readable summary: numeric diagnostics first,
// then warnings and failures, then the verdict.
func renderReport(w io.Writer, path string, sol *solution.Assignment, rep *validate.Report, showSoft bool) {
	st := rep.Stats
	fmt.Fprintln(w, "WMIBO VALIDATION REPORT")
	fmt.Fprintf(w, "  instance: %s\n", path)
	fmt.Fprintf(w, "  status:   %s\n", sol.Status)
	if st.Reported != nil {
		fmt.Fprintf(w, "  o(reported): %.12g\n", *st.Reported)
	}
	fmt.Fprintf(w, "  lin_obj:  %.12g\n", st.LinObj)
	fmt.Fprintf(w, "  penalty:  %.12g   (soft_violations=%d)\n", st.Penalty, st.SoftViolations)
	fmt.Fprintf(w, "  total_min:        %.12g\n", st.TotalMin)
	fmt.Fprintf(w, "  total_internal:   %.12g\n", st.TotalInternal)
	fmt.Fprintf(w, "  total_max_orig:   %.12g\n", st.TotalMaxOriginal)
	if st.BestMatch != "" {
		fmt.Fprintf(w, "  best_match: %s  value=%.12g  abs_err=%.3g\n", st.BestMatch, st.BestValue, st.BestAbsErr)
	}
	if showSoft {
		if len(st.ViolatedCNFSoft) > 0 {
			fmt.Fprintf(w, "  violated soft CNF clauses:  %v\n", st.ViolatedCNFSoft)
		}
		if len(st.ViolatedWCNFSoft) > 0 {
			fmt.Fprintf(w, "  violated soft WCNF clauses: %v\n", st.ViolatedWCNFSoft)
		}
	}

	if warnings := rep.Warnings(); len(warnings) > 0 {
		fmt.Fprintln(w, "\nWARNINGS:")
		for _, d := range warnings {
			fmt.Fprintf(w, "  - %s\n", d.Message)
		}
	}
	if failures := rep.Failures(); len(failures) > 0 {
		fmt.Fprintln(w, "\nFAILURES:")
		for _, d := range failures {
			fmt.Fprintf(w, "  - %s\n", d.Message)
		}
	}

	if rep.OK {
		fmt.Fprintln(w, "\nRESULT: OK")
	} else {
		fmt.Fprintln(w, "\nRESULT: FAIL")
	}
}

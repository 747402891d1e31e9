package importservice

import (
	"fmt"
	"strings"
)

// ValidationIssue pinpoints one failed check in an uploaded sheet.
type ValidationIssue struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every issue found in a batch. A single issue
// rejects the whole import; no rows are accepted partially.
type ValidationError struct {
	Issues []ValidationIssue `json:"issues"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("import validation failed with %d issue(s)", len(e.Issues))
}

// FilterWithdrawals drops rows whose partner-surname column carries the
// withdrawal sentinel. They are treated as never submitted.
func FilterWithdrawals(rows []RawRow) []RawRow {
	out := make([]RawRow, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row[FieldPartnerLast]) == WithdrawalSentinel {
			continue
		}
		out = append(out, row)
	}
	return out
}

// ValidateRows checks the full batch and returns either every row validated
// or a *ValidationError listing every issue found. It does not stop at the
// first failure.
func ValidateRows(rows []RawRow) ([]ImportRow, error) {
	var issues []ValidationIssue
	out := make([]ImportRow, 0, len(rows))

	for i, raw := range rows {
		row, rowIssues := validateRow(i, raw)
		if len(rowIssues) > 0 {
			issues = append(issues, rowIssues...)
			continue
		}
		out = append(out, row)
	}

	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return out, nil
}

func validateRow(idx int, raw RawRow) (ImportRow, []ValidationIssue) {
	var issues []ValidationIssue

	get := func(field string) string { return strings.TrimSpace(raw[field]) }
	fail := func(field, message string) {
		issues = append(issues, ValidationIssue{Row: idx, Field: field, Message: message})
	}

	row := ImportRow{
		Class:      get(FieldClass),
		Discipline: get(FieldDiscipline),
		LastName:   get(FieldLastName),
		FirstName:  get(FieldFirstName),
		Club:       get(FieldClub),
	}

	if row.Discipline == "" {
		fail(FieldDiscipline, "discipline is required")
	}
	if row.LastName == "" {
		fail(FieldLastName, "name is required")
	}
	if row.FirstName == "" {
		fail(FieldFirstName, "first name is required")
	}

	gender, ok := parseGender(get(FieldGender))
	if !ok {
		fail(FieldGender, `gender must be "M" or "W"`)
	}
	row.Gender = gender

	partnerLast := get(FieldPartnerLast)
	partnerFirst := get(FieldPartnerFirst)
	partnerGender := get(FieldPartnerGender)

	filled := 0
	for _, v := range []string{partnerLast, partnerFirst, partnerGender} {
		if v != "" {
			filled++
		}
	}

	switch filled {
	case 0:
		// Singles entry, no partner block.
	case 3:
		pg, ok := parseGender(partnerGender)
		if !ok {
			fail(FieldPartnerGender, `partner gender must be "M" or "W"`)
			break
		}
		row.Partner = &Partner{
			LastName:  partnerLast,
			FirstName: partnerFirst,
			Gender:    pg,
			Club:      get(FieldPartnerClub),
		}
	default:
		fail(
			FieldPartnerLast+"|"+FieldPartnerFirst+"|"+FieldPartnerGender,
			"partner information must be either completely filled or completely empty",
		)
	}

	return row, issues
}

func parseGender(s string) (Gender, bool) {
	switch g := Gender(s); g {
	case GenderMale, GenderFemale:
		return g, true
	}
	return "", false
}

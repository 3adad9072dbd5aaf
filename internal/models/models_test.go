package models

import "testing"

func TestStatusName(t *testing.T) {
	cases := map[string]string{
		StatusPending:   "Pending",
		StatusAccepted:  "Accepted",
		StatusDeclined:  "Declined",
		StatusCancelled: "Cancelled",
		"XXX":           "",
	}

	for code, want := range cases {
		if got := StatusName(code); got != want {
			t.Errorf("StatusName(%q) = %q, expected %q", code, got, want)
		}
	}
}

func TestTerminalStatus(t *testing.T) {
	for _, code := range []string{StatusAccepted, StatusDeclined, StatusCancelled} {
		if !TerminalStatus(code) {
			t.Errorf("TerminalStatus(%q) should be true", code)
		}
	}
	for _, code := range []string{StatusPending, "", "XXX"} {
		if TerminalStatus(code) {
			t.Errorf("TerminalStatus(%q) should be false", code)
		}
	}
}

func TestRequestIsParticipant(t *testing.T) {
	r := Request{RequesterID: 1, RequesteeID: 2}

	if !r.IsParticipant(1) || !r.IsParticipant(2) {
		t.Error("both requester and requestee are participants")
	}
	if r.IsParticipant(3) {
		t.Error("third parties are not participants")
	}
	if r.IsParticipant(0) {
		t.Error("zero user id is never a participant")
	}
}

func TestValidCategory(t *testing.T) {
	valid := []string{
		CategoryArts, CategoryEducation, CategoryFashion, CategoryFilm,
		CategoryFinance, CategoryMedicine, CategorySoftware, CategorySport,
		CategoryTechnology,
	}
	for _, code := range valid {
		if !ValidCategory(code) {
			t.Errorf("ValidCategory(%q) should be true", code)
		}
		if CategoryName(code) == "" {
			t.Errorf("CategoryName(%q) should not be empty", code)
		}
	}

	for _, code := range []string{"", "ZZZ", "art"} {
		if ValidCategory(code) {
			t.Errorf("ValidCategory(%q) should be false", code)
		}
	}
}

func TestProjectIsOwnedBy(t *testing.T) {
	p := Project{OwnerID: 5}

	if !p.IsOwnedBy(5) {
		t.Error("owner check failed")
	}
	if p.IsOwnedBy(6) || p.IsOwnedBy(0) {
		t.Error("non-owners should not pass the owner check")
	}
}

func TestStringListRoundTrip(t *testing.T) {
	original := StringList{"designer", "backend developer"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var scanned StringList
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(scanned) != 2 || scanned[0] != "designer" || scanned[1] != "backend developer" {
		t.Errorf("round trip mismatch: %v", scanned)
	}
}

func TestStringListNilAndEmpty(t *testing.T) {
	var nilList StringList
	value, err := nilList.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if value != "[]" {
		t.Errorf("nil list should serialize to empty array, got %v", value)
	}

	var scanned StringList
	if err := scanned.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if len(scanned) != 0 {
		t.Errorf("scanning nil should produce an empty list, got %v", scanned)
	}

	if err := scanned.Scan(42); err == nil {
		t.Error("scanning a non-string value should fail")
	}
}

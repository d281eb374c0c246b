package lawyers

import (
	"testing"
)

func testDirectory() *Directory {
	return NewDirectoryWith([]Lawyer{
		{ID: "a", Name: "Asha Verma", City: "Mumbai", PracticeAreas: []string{"Criminal Law"}, ExperienceYears: 10},
		{ID: "b", Name: "Bhavesh Patel", City: "Mumbai", PracticeAreas: []string{"Corporate Law"}, ExperienceYears: 20},
		{ID: "c", Name: "Chitra Rao", City: "Delhi", PracticeAreas: []string{"Criminal Law", "Family Law"}, ExperienceYears: 20},
		{ID: "d", Name: "Dev Anand", City: "Delhi", PracticeAreas: []string{"Tax Law"}, ExperienceYears: 5},
	})
}

func TestAll_SortsByExperienceThenName(t *testing.T) {
	got := testDirectory().All()
	wantOrder := []string{"b", "c", "a", "d"}
	if len(got) != len(wantOrder) {
		t.Fatalf("Expected %d lawyers, got %d", len(wantOrder), len(got))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestFilter_SearchTermMatchesNameAndPracticeArea(t *testing.T) {
	d := testDirectory()

	byName := d.Filter("asha", "")
	if len(byName) != 1 || byName[0].ID != "a" {
		t.Errorf("Name search should match case-insensitively, got %v", byName)
	}

	byArea := d.Filter("CRIMINAL", "")
	if len(byArea) != 2 {
		t.Fatalf("Practice-area search should match 2 lawyers, got %d", len(byArea))
	}
	if byArea[0].ID != "c" || byArea[1].ID != "a" {
		t.Errorf("Results should sort by experience desc, got %s then %s", byArea[0].ID, byArea[1].ID)
	}
}

func TestFilter_CityIsExactMatch(t *testing.T) {
	d := testDirectory()

	mumbai := d.Filter("", "Mumbai")
	if len(mumbai) != 2 {
		t.Fatalf("Expected 2 Mumbai lawyers, got %d", len(mumbai))
	}
	if len(d.Filter("", "mumbai")) != 0 {
		t.Error("City filter is exact, lowercase should not match")
	}
}

func TestFilter_CombinesTermAndCity(t *testing.T) {
	got := testDirectory().Filter("criminal", "Delhi")
	if len(got) != 1 || got[0].ID != "c" {
		t.Errorf("Combined filter should match only c, got %v", got)
	}
}

func TestFilter_NoMatchesIsEmpty(t *testing.T) {
	if got := testDirectory().Filter("maritime", ""); len(got) != 0 {
		t.Errorf("Expected no matches, got %d", len(got))
	}
}

func TestCities_DistinctSorted(t *testing.T) {
	got := testDirectory().Cities()
	if len(got) != 2 || got[0] != "Delhi" || got[1] != "Mumbai" {
		t.Errorf("Expected [Delhi Mumbai], got %v", got)
	}
}

func TestDefaultDirectory_NotEmpty(t *testing.T) {
	if len(NewDirectory().All()) == 0 {
		t.Error("Built-in listing should not be empty")
	}
}

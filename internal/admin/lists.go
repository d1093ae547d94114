package admin

import (
	"fmt"
	"strings"

	"github.com/Alan-Biju/global-visa/internal/country"
)

// List editing mirrors the form rows: append adds a blank row at the
// end, set edits a row in place, remove splices it out so the remaining
// rows shift down by exactly one index. Indices passed back from the
// form stay valid across edits to other rows.

func setItem[T any](list []T, i int, item T) ([]T, error) {
	if i < 0 || i >= len(list) {
		return list, fmt.Errorf("index %d out of range (len %d)", i, len(list))
	}
	list[i] = item
	return list, nil
}

func removeItem[T any](list []T, i int) ([]T, error) {
	if i < 0 || i >= len(list) {
		return list, fmt.Errorf("index %d out of range (len %d)", i, len(list))
	}
	return append(list[:i], list[i+1:]...), nil
}

// AddCategory registers a new visa category under the given label. The
// label is free text; duplicates are rejected.
func (e *Editor) AddCategory(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("category label is required")
	}
	if e.Visa == nil {
		e.Visa = map[string]country.VisaCategoryDetails{}
	}
	if _, exists := e.Visa[label]; exists {
		return fmt.Errorf("category %q already exists", label)
	}
	e.Visa[label] = country.VisaCategoryDetails{}
	return nil
}

// RemoveCategory drops a visa category and everything under it.
func (e *Editor) RemoveCategory(label string) error {
	if _, exists := e.Visa[label]; !exists {
		return fmt.Errorf("category %q does not exist", label)
	}
	delete(e.Visa, label)
	return nil
}

// SetCategoryField updates a scalar field of one category.
func (e *Editor) SetCategoryField(label string, update func(*country.VisaCategoryDetails)) error {
	details, exists := e.Visa[label]
	if !exists {
		return fmt.Errorf("category %q does not exist", label)
	}
	update(&details)
	e.Visa[label] = details
	return nil
}

// Country-level lists.

func (e *Editor) AddFormality() { e.Formalities = append(e.Formalities, "") }

func (e *Editor) SetFormality(i int, v string) error {
	var err error
	e.Formalities, err = setItem(e.Formalities, i, v)
	return err
}
func (e *Editor) RemoveFormality(i int) error {
	var err error
	e.Formalities, err = removeItem(e.Formalities, i)
	return err
}

func (e *Editor) AddFile() { e.Files = append(e.Files, country.File{}) }

func (e *Editor) SetFile(i int, f country.File) error {
	var err error
	e.Files, err = setItem(e.Files, i, f)
	return err
}
func (e *Editor) RemoveFile(i int) error {
	var err error
	e.Files, err = removeItem(e.Files, i)
	return err
}

// Per-category lists. Each trio goes through the same splice helpers so
// index behavior is identical across fields.

func (e *Editor) AddRequirement(cat string) error {
	return e.SetCategoryField(cat, func(d *country.VisaCategoryDetails) {
		d.Requirements = append(d.Requirements, "")
	})
}

func (e *Editor) SetRequirement(cat string, i int, v string) error {
	return e.spliceStrings(cat, i, &v, func(d *country.VisaCategoryDetails) *[]string { return &d.Requirements })
}

func (e *Editor) RemoveRequirement(cat string, i int) error {
	return e.spliceStrings(cat, i, nil, func(d *country.VisaCategoryDetails) *[]string { return &d.Requirements })
}

func (e *Editor) AddProcessStep(cat string) error {
	return e.SetCategoryField(cat, func(d *country.VisaCategoryDetails) {
		d.Process = append(d.Process, "")
	})
}

func (e *Editor) SetProcessStep(cat string, i int, v string) error {
	return e.spliceStrings(cat, i, &v, func(d *country.VisaCategoryDetails) *[]string { return &d.Process })
}

func (e *Editor) RemoveProcessStep(cat string, i int) error {
	return e.spliceStrings(cat, i, nil, func(d *country.VisaCategoryDetails) *[]string { return &d.Process })
}

func (e *Editor) AddCategoryFormality(cat string) error {
	return e.SetCategoryField(cat, func(d *country.VisaCategoryDetails) {
		d.Formalities = append(d.Formalities, "")
	})
}

func (e *Editor) SetCategoryFormality(cat string, i int, v string) error {
	return e.spliceStrings(cat, i, &v, func(d *country.VisaCategoryDetails) *[]string { return &d.Formalities })
}

func (e *Editor) RemoveCategoryFormality(cat string, i int) error {
	return e.spliceStrings(cat, i, nil, func(d *country.VisaCategoryDetails) *[]string { return &d.Formalities })
}

func (e *Editor) AddChecklistItem(cat string) error {
	return e.SetCategoryField(cat, func(d *country.VisaCategoryDetails) {
		d.Checklists = append(d.Checklists, country.ChecklistItem{})
	})
}

func (e *Editor) SetChecklistItem(cat string, i int, item country.ChecklistItem) error {
	var opErr error
	if err := e.SetCategoryField(cat, func(d *country.VisaCategoryDetails) {
		d.Checklists, opErr = setItem(d.Checklists, i, item)
	}); err != nil {
		return err
	}
	return opErr
}

func (e *Editor) RemoveChecklistItem(cat string, i int) error {
	var opErr error
	if err := e.SetCategoryField(cat, func(d *country.VisaCategoryDetails) {
		d.Checklists, opErr = removeItem(d.Checklists, i)
	}); err != nil {
		return err
	}
	return opErr
}

func (e *Editor) AddDownload(cat string) error {
	return e.SetCategoryField(cat, func(d *country.VisaCategoryDetails) {
		d.Downloads = append(d.Downloads, country.DownloadItem{})
	})
}

func (e *Editor) SetDownload(cat string, i int, item country.DownloadItem) error {
	var opErr error
	if err := e.SetCategoryField(cat, func(d *country.VisaCategoryDetails) {
		d.Downloads, opErr = setItem(d.Downloads, i, item)
	}); err != nil {
		return err
	}
	return opErr
}

func (e *Editor) RemoveDownload(cat string, i int) error {
	var opErr error
	if err := e.SetCategoryField(cat, func(d *country.VisaCategoryDetails) {
		d.Downloads, opErr = removeItem(d.Downloads, i)
	}); err != nil {
		return err
	}
	return opErr
}

func (e *Editor) AddCategoryFile(cat string) error {
	return e.SetCategoryField(cat, func(d *country.VisaCategoryDetails) {
		d.Files = append(d.Files, country.File{})
	})
}

func (e *Editor) SetCategoryFile(cat string, i int, f country.File) error {
	var opErr error
	if err := e.SetCategoryField(cat, func(d *country.VisaCategoryDetails) {
		d.Files, opErr = setItem(d.Files, i, f)
	}); err != nil {
		return err
	}
	return opErr
}

func (e *Editor) RemoveCategoryFile(cat string, i int) error {
	var opErr error
	if err := e.SetCategoryField(cat, func(d *country.VisaCategoryDetails) {
		d.Files, opErr = removeItem(d.Files, i)
	}); err != nil {
		return err
	}
	return opErr
}

// spliceStrings applies a set (value != nil) or remove (value == nil)
// to one of a category's string lists.
func (e *Editor) spliceStrings(cat string, i int, value *string, field func(*country.VisaCategoryDetails) *[]string) error {
	var opErr error
	if err := e.SetCategoryField(cat, func(d *country.VisaCategoryDetails) {
		list := field(d)
		if value != nil {
			*list, opErr = setItem(*list, i, *value)
		} else {
			*list, opErr = removeItem(*list, i)
		}
	}); err != nil {
		return err
	}
	return opErr
}

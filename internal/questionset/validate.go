package questionset

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"

	"github.com/abhisek/placement/internal/answer"
)

// SupportedMajor is the only question-set format major version accepted.
const SupportedMajor = "v1"

var (
	validateOnce    sync.Once
	structValidator *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterValidation("item_type", validateItemType)
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		structValidator = v
	})
	return structValidator
}

func validateItemType(fl validator.FieldLevel) bool {
	return Type(fl.Field().String()).Valid()
}

// fieldProblems maps validator errors to readable problem lines.
func fieldProblems(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		problems = append(problems, fmt.Sprintf("%s %s", field, fieldMessage(fe)))
	}
	return problems
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "item_type":
		names := make([]string, 0, len(AllTypes()))
		for _, t := range AllTypes() {
			names = append(names, string(t))
		}
		return fmt.Sprintf("%q is not a valid item type (%s)", fe.Value(), strings.Join(names, ", "))
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// checkVersion accepts "1.2.3" or "v1.2.3" with major version v1.
func checkVersion(version string) error {
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a semantic version", version)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("version %q is not supported (want %s.x.y)", version, SupportedMajor)
	}
	return nil
}

// validateStructure performs every structural check on a decoded document
// and returns all problems found.
func validateStructure(d *document) []string {
	var errs []string

	if err := getValidator().Struct(d); err != nil {
		errs = append(errs, fieldProblems(err)...)
	}

	if d.Version != "" {
		if err := checkVersion(d.Version); err != nil {
			errs = append(errs, err.Error())
		}
	}

	sectionIDs := make(map[string]bool, len(d.Sections))
	itemIDs := make(map[string]string)
	for _, sec := range d.Sections {
		if sec.ID != "" {
			if sectionIDs[sec.ID] {
				errs = append(errs, fmt.Sprintf("duplicate section ID: %q", sec.ID))
			}
			sectionIDs[sec.ID] = true
		}

		for _, it := range sec.Items {
			if it.ID != "" {
				if prev, dup := itemIDs[it.ID]; dup {
					errs = append(errs, fmt.Sprintf("duplicate item ID: %q (sections %q and %q)", it.ID, prev, sec.ID))
				}
				itemIDs[it.ID] = sec.ID
			}
			errs = append(errs, checkItem(it)...)
		}
	}

	return errs
}

// checkItem verifies an item's answer key against its declared type.
func checkItem(it itemDoc) []string {
	t := Type(it.Type)
	if !t.Valid() {
		// Reported by the struct validator.
		return nil
	}

	prefix := fmt.Sprintf("item %q", it.ID)
	spec, err := it.Answer.spec()
	if err != nil {
		return []string{fmt.Sprintf("%s: %v", prefix, err)}
	}

	if !t.Allows(spec.Kind()) {
		if spec.Kind() == answer.KindNone {
			return []string{fmt.Sprintf("%s: %s item has no answer", prefix, t)}
		}
		if t == ExtendedWriting {
			return []string{fmt.Sprintf("%s: %s item must not have an answer", prefix, t)}
		}
		allowed := make([]string, 0, len(t.AllowedKinds()))
		for _, k := range t.AllowedKinds() {
			allowed = append(allowed, string(k))
		}
		return []string{fmt.Sprintf("%s: %s answer not allowed for %s item (want %s)",
			prefix, spec.Kind(), t, strings.Join(allowed, " or "))}
	}

	var errs []string
	if t == MultiBlank && it.BlankCount != 0 && it.BlankCount != spec.BlankCount() {
		errs = append(errs, fmt.Sprintf("%s: blank_count is %d but answer has %d blanks",
			prefix, it.BlankCount, spec.BlankCount()))
	}
	if t != MultiBlank && it.BlankCount != 0 {
		errs = append(errs, fmt.Sprintf("%s: blank_count is only valid for %s items", prefix, MultiBlank))
	}
	if t == SingleChoice && len(it.Options) > 0 && !offered(it.Options, spec.Alternatives()) {
		errs = append(errs, fmt.Sprintf("%s: no acceptable answer is among the options", prefix))
	}
	return errs
}

func offered(options, acceptable []string) bool {
	for _, a := range acceptable {
		for _, o := range options {
			if answer.Normalize(a) == answer.Normalize(o) {
				return true
			}
		}
	}
	return false
}

package questionset

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/placement/internal/answer"
	"github.com/abhisek/placement/internal/remediation"
	"github.com/abhisek/placement/internal/skills"
)

// setJSON wraps item objects into a one-section question set document.
func setJSON(version string, items ...string) []byte {
	body := ""
	for i, it := range items {
		if i > 0 {
			body += ","
		}
		body += it
	}
	return []byte(fmt.Sprintf(`{"version":%q,"sections":[{"id":"s1","title":"Section","items":[%s]}]}`, version, body))
}

func TestLoad_JSON(t *testing.T) {
	set, err := Load("testdata/placement.json")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", set.Version)
	assert.Equal(t, "General English placement", set.Title)
	assert.Len(t, set.Sections, 6)
	assert.Equal(t, 8, set.ItemCount())

	g2, ok := set.Item("g2")
	require.True(t, ok)
	assert.Equal(t, OpenText, g2.Type)
	assert.Equal(t, skills.Grammar, g2.Skill)
	assert.Equal(t, answer.KindParts, g2.Answer.Kind())
	assert.Equal(t, 2, g2.Answer.PartCount())

	u1, ok := set.Item("u1")
	require.True(t, ok)
	assert.Equal(t, answer.KindMultiBlank, u1.Answer.Kind())
	assert.Equal(t, 2, u1.BlankCount)
	assert.Equal(t, []remediation.Topic{"A1: 'be' + noun", "B1: fixed expressions"}, u1.ReviewTags)

	g3, ok := set.Item("g3")
	require.True(t, ok)
	assert.True(t, answer.Match(g3.Answer, answer.Text("NEVER have I seen such a crowd")).Correct)

	w1, ok := set.Item("w1")
	require.True(t, ok)
	assert.True(t, w1.IsWriting())
	assert.Equal(t, answer.KindNone, w1.Answer.Kind())
	assert.Empty(t, w1.ReviewTags)

	r1, _ := set.Item("r1")
	assert.NotEmpty(t, r1.Passage)
	assert.Len(t, r1.Options, 3)
	l1, _ := set.Item("l1")
	assert.NotEmpty(t, l1.TTSText)

	assert.Contains(t, set.Remediation, remediation.Topic("B1: word order in questions"))

	_, ok = set.Item("nope")
	assert.False(t, ok)
}

func TestLoad_YAMLMatchesJSON(t *testing.T) {
	fromJSON, err := Load("testdata/placement.json")
	require.NoError(t, err)
	fromYAML, err := Load("testdata/placement.yaml")
	require.NoError(t, err)

	assert.Equal(t, fromJSON.Version, fromYAML.Version)
	assert.Equal(t, fromJSON.Title, fromYAML.Title)
	assert.Equal(t, fromJSON.Remediation, fromYAML.Remediation)
	require.Len(t, fromYAML.Sections, len(fromJSON.Sections))

	for i, js := range fromJSON.Sections {
		ys := fromYAML.Sections[i]
		assert.Equal(t, js.ID, ys.ID)
		assert.Equal(t, js.Title, ys.Title)
		require.Len(t, ys.Items, len(js.Items))
		for j, ji := range js.Items {
			yi := ys.Items[j]
			assert.Equal(t, ji.ID, yi.ID)
			assert.Equal(t, ji.Type, yi.Type)
			assert.Equal(t, ji.Skill, yi.Skill)
			assert.Equal(t, ji.LevelHint, yi.LevelHint)
			assert.Equal(t, ji.Prompt, yi.Prompt)
			assert.Equal(t, ji.Options, yi.Options)
			assert.Equal(t, ji.ReviewTags, yi.ReviewTags)
			assert.Equal(t, ji.BlankCount, yi.BlankCount)
			assert.Equal(t, ji.Answer.Kind(), yi.Answer.Kind(), "item %s", ji.ID)
			assert.Equal(t, answer.Canonical(ji.Answer), answer.Canonical(yi.Answer), "item %s", ji.ID)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ErrorNamesSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, setJSON("3.0.0", `{"id":"a","type":"open_text","skill":"Grammar","answer":{"exact":"x"}}`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestParse_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "unknown type",
			data: setJSON("1.0.0", `{"id":"a","type":"essay","skill":"Writing"}`),
			want: `"essay" is not a valid item type`,
		},
		{
			name: "duplicate item IDs",
			data: setJSON("1.0.0",
				`{"id":"a","type":"open_text","skill":"Grammar","answer":{"exact":"x"}}`,
				`{"id":"a","type":"open_text","skill":"Grammar","answer":{"exact":"y"}}`),
			want: `duplicate item ID: "a"`,
		},
		{
			name: "answer kind not allowed for type",
			data: setJSON("1.0.0", `{"id":"a","type":"single_choice","skill":"Grammar","answer":{"pattern":"x"}}`),
			want: "pattern answer not allowed for single_choice item",
		},
		{
			name: "missing answer",
			data: setJSON("1.0.0", `{"id":"a","type":"open_text","skill":"Grammar"}`),
			want: "open_text item has no answer",
		},
		{
			name: "writing with answer",
			data: setJSON("1.0.0", `{"id":"w","type":"extended_writing","skill":"Writing","answer":{"exact":"x"}}`),
			want: "extended_writing item must not have an answer",
		},
		{
			name: "blank count mismatch",
			data: setJSON("1.0.0", `{"id":"c","type":"multi_blank","skill":"Grammar","blank_count":3,"answer":{"blanks":[["was"],["were"]]}}`),
			want: "blank_count is 3 but answer has 2 blanks",
		},
		{
			name: "blank count on other types",
			data: setJSON("1.0.0", `{"id":"a","type":"open_text","skill":"Grammar","blank_count":2,"answer":{"exact":"x"}}`),
			want: "blank_count is only valid for multi_blank items",
		},
		{
			name: "invalid pattern",
			data: setJSON("1.0.0", `{"id":"p","type":"pattern_match","skill":"Grammar","answer":{"pattern":"(unclosed"}}`),
			want: "compile answer pattern",
		},
		{
			name: "answer not among options",
			data: setJSON("1.0.0", `{"id":"m","type":"single_choice","skill":"Grammar","options":["a","b"],"answer":{"exact":"c"}}`),
			want: "no acceptable answer is among the options",
		},
		{
			name: "unsupported major version",
			data: setJSON("2.0.0", `{"id":"a","type":"open_text","skill":"Grammar","answer":{"exact":"x"}}`),
			want: "is not supported",
		},
		{
			name: "version not semver",
			data: setJSON("latest", `{"id":"a","type":"open_text","skill":"Grammar","answer":{"exact":"x"}}`),
			want: "is not a semantic version",
		},
		{
			name: "two answer forms",
			data: setJSON("1.0.0", `{"id":"a","type":"open_text","skill":"Grammar","answer":{"exact":"x","any_of":["y"]}}`),
		},
		{
			name: "missing skill",
			data: setJSON("1.0.0", `{"id":"a","type":"open_text","answer":{"exact":"x"}}`),
		},
		{
			name: "no sections",
			data: []byte(`{"version":"1.0.0","sections":[]}`),
		},
		{
			name: "malformed JSON",
			data: []byte(`{"version":`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Parse(tt.data, FormatJSON)
			require.Error(t, err)
			assert.Nil(t, set)
			assert.ErrorIs(t, err, ErrInvalidQuestionSet)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.NotEmpty(t, cfgErr.Problems)
			if tt.want != "" {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestParse_ReportsEveryProblem(t *testing.T) {
	data := setJSON("1.0.0",
		`{"id":"a","type":"single_choice","skill":"Grammar","answer":{"pattern":"x"}}`,
		`{"id":"a","type":"open_text","skill":"Grammar"}`,
		`{"id":"b","type":"quiz","skill":"Grammar"}`,
	)

	_, err := Parse(data, FormatJSON)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Len(t, cfgErr.Problems, 4)
	assert.Contains(t, err.Error(), "question set validation failed:\n  ")
}

func TestParse_YAMLSyntaxError(t *testing.T) {
	_, err := Parse([]byte("sections: [unclosed"), FormatYAML)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQuestionSet)
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte(`{}`), Format("toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "toml"`)
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"1.0.0", false},
		{"v1.2.3", false},
		{"1.4", false},
		{"1.0.0-beta.1", false},
		{"2.0.0", true},
		{"v0.9.0", true},
		{"one", true},
		{"", true},
	}

	for _, tt := range tests {
		err := checkVersion(tt.version)
		if tt.wantErr {
			assert.Error(t, err, "version %q", tt.version)
		} else {
			assert.NoError(t, err, "version %q", tt.version)
		}
	}
}

func TestMultiBlankCountDefaultsFromAnswer(t *testing.T) {
	set, err := Parse(setJSON("1.0.0", `{"id":"c","type":"multi_blank","skill":"Grammar","answer":{"blanks":[["a"],["b"],["c"]]}}`), FormatJSON)
	require.NoError(t, err)
	it, _ := set.Item("c")
	assert.Equal(t, 3, it.BlankCount)
}

func TestSet_FallbackTags(t *testing.T) {
	set, err := Load("testdata/placement.json")
	require.NoError(t, err)

	base := remediation.DefaultLibrary()
	assert.Equal(t, []remediation.Topic{"B1: word order in questions"}, set.FallbackTags(base))
	assert.Empty(t, set.FallbackTags(set.Library(base)))
}

func TestType_Allows(t *testing.T) {
	tests := []struct {
		typ  Type
		kind answer.Kind
		want bool
	}{
		{SingleChoice, answer.KindExact, true},
		{SingleChoice, answer.KindAnyOf, true},
		{SingleChoice, answer.KindParts, false},
		{OpenText, answer.KindPattern, true},
		{ListeningPrompt, answer.KindParts, true},
		{PatternMatch, answer.KindPattern, true},
		{PatternMatch, answer.KindExact, false},
		{MultiBlank, answer.KindMultiBlank, true},
		{MultiBlank, answer.KindAnyOf, false},
		{ExtendedWriting, answer.KindNone, true},
		{ExtendedWriting, answer.KindExact, false},
		{Type("quiz"), answer.KindExact, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.Allows(tt.kind), "%s allows %q", tt.typ, tt.kind)
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("set.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("SET.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("set.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("set"))
}

func TestParseSubmission(t *testing.T) {
	sub, err := LoadSubmission("testdata/submission.json")
	require.NoError(t, err)

	assert.Equal(t, "Ada", sub.Candidate)
	assert.Equal(t, "Mother ", sub.Answers["g1"].Text())
	assert.True(t, sub.Answers["u1"].IsList())
	assert.Equal(t, "was | was", sub.Answers["u1"].Render())
	assert.True(t, sub.Answers["l1"].Blank(), "a number decodes as an absent answer")

	fromYAML, err := LoadSubmission("testdata/submission.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Ada", fromYAML.Candidate)
	assert.Equal(t, "had known | would be", fromYAML.Answers["g2"].Text())
	assert.Equal(t, []string{"was", "was"}, fromYAML.Answers["u1"].Parts())
	assert.True(t, fromYAML.Answers["w1"].Blank())
}

func TestParseSubmission_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing answers", `{"candidate":"Ada"}`},
		{"answers not an object", `{"answers":["a"]}`},
		{"unknown field", `{"answers":{},"score":10}`},
		{"not JSON", `answers`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSubmission([]byte(tt.data), FormatJSON)
			assert.Error(t, err)
		})
	}
}

func TestParseSubmission_EmptyAnswers(t *testing.T) {
	sub, err := ParseSubmission([]byte(`{"answers":{}}`), FormatJSON)
	require.NoError(t, err)
	assert.NotNil(t, sub.Answers)
	assert.Empty(t, sub.Candidate)
}

func TestItem_Units(t *testing.T) {
	set, err := Load("testdata/placement.json")
	require.NoError(t, err)

	want := map[string]int{"g1": 1, "g2": 1, "u1": 2, "w1": 6}
	for id, units := range want {
		it, ok := set.Item(id)
		require.True(t, ok, id)
		assert.Equal(t, units, it.Units(), id)
	}
}

package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/zarlcorp/zfake/internal/record"
)

func sample(n int) record.Dataset {
	ds := make(record.Dataset, 0, n)
	for i := range n {
		r := record.New()
		r.Set("id", "id-"+string(rune('a'+i)))
		r.Set("name", "Jane Doe")
		r.Set("company", "Smith & Sons")
		r.Set("score", 1000+i)
		ds = append(ds, r)
	}
	return ds
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"CSV", FormatCSV, false},
		{" xml ", FormatXML, false},
		{"yaml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("ParseFormat(%q) err = %v, want ErrUnsupportedFormat", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	for _, f := range Formats() {
		if got, want := f.FileName(), "test-data."+string(f); got != want {
			t.Errorf("FileName() = %s, want %s", got, want)
		}
	}
}

func TestJSON(t *testing.T) {
	ds := sample(3)
	out, err := Marshal(ds, FormatJSON)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if !strings.HasPrefix(string(out), "[\n  {\n    \"id\": \"id-a\",\n    \"name\"") {
		t.Errorf("unexpected layout:\n%s", out)
	}
	if !strings.Contains(string(out), `"Smith & Sons"`) {
		t.Errorf("html characters escaped:\n%s", out)
	}

	var back record.Dataset
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ds.Equal(back) {
		t.Errorf("round trip mismatch:\n%s", out)
	}
	if v, _ := back[2].Get("score"); v != 1002 {
		t.Errorf("score = %#v, want int 1002", v)
	}
}

func TestJSONEmpty(t *testing.T) {
	for _, ds := range []record.Dataset{nil, {}} {
		out, err := Marshal(ds, FormatJSON)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if strings.TrimSpace(string(out)) != "[]" {
			t.Errorf("empty dataset rendered as %q", out)
		}
	}
}

func TestCSV(t *testing.T) {
	ds := sample(5)
	out, err := Marshal(ds, FormatCSV)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	if len(lines) != len(ds)+1 {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(ds)+1, out)
	}
	if lines[0] != "id,name,company,score" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "id-a,Jane Doe,Smith & Sons,1000" {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestCSVQuotesDelimiters(t *testing.T) {
	r := record.New()
	r.Set("company", "Acme, Inc.")
	r.Set("motto", `say "hi"`)
	r.Set("address", "line1\nline2")
	ds := record.Dataset{r}

	out, err := Marshal(ds, FormatCSV)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := "company,motto,address\n\"Acme, Inc.\",\"say \"\"hi\"\"\",\"line1\nline2\"\n"
	if string(out) != want {
		t.Errorf("csv =\n%q\nwant\n%q", out, want)
	}

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "Acme, Inc." || rows[1][1] != `say "hi"` || rows[1][2] != "line1\nline2" {
		t.Errorf("read back rows = %q", rows)
	}
}

func TestCSVEmpty(t *testing.T) {
	out, err := Marshal(nil, FormatCSV)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("empty dataset rendered as %q", out)
	}
}

type xmlDoc struct {
	XMLName xml.Name `xml:"TestData"`
	Records []struct {
		ID      string `xml:"id"`
		Company string `xml:"company"`
		Score   int    `xml:"score"`
	} `xml:"Record"`
}

func TestXML(t *testing.T) {
	ds := sample(4)
	out, err := Marshal(ds, FormatXML)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if !strings.HasPrefix(string(out), `<?xml version="1.0"?>`+"\n<TestData>\n  <Record>\n    <id>id-a</id>") {
		t.Errorf("unexpected layout:\n%s", out)
	}

	var doc xmlDoc
	if err := xml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Records) != len(ds) {
		t.Fatalf("got %d Record elements, want %d", len(doc.Records), len(ds))
	}
	if doc.Records[0].Company != "Smith & Sons" {
		t.Errorf("company = %q", doc.Records[0].Company)
	}
	if doc.Records[3].Score != 1003 {
		t.Errorf("score = %d, want 1003", doc.Records[3].Score)
	}
}

func TestXMLEmpty(t *testing.T) {
	out, err := Marshal(record.Dataset{}, FormatXML)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc xmlDoc
	if err := xml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Records) != 0 {
		t.Errorf("got %d records, want 0", len(doc.Records))
	}
}

func TestXMLInvalidElementName(t *testing.T) {
	tests := []string{"1st", "two words", "ns:tag", "", "-dash"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			r := record.New()
			r.Set("id", "x")
			r.Set(name, "v")

			var buf bytes.Buffer
			err := Render(&buf, record.Dataset{r}, FormatXML)
			if !errors.Is(err, ErrInvalidElementName) {
				t.Errorf("err = %v, want ErrInvalidElementName", err)
			}
			if buf.Len() != 0 {
				t.Errorf("partial output written: %q", buf.String())
			}
		})
	}
}

func TestValidElementName(t *testing.T) {
	for _, name := range []string{"id", "createdAt", "_x", "a-b.c1", "größe"} {
		if !validElementName(name) {
			t.Errorf("validElementName(%q) = false", name)
		}
	}
}

func TestUnsupportedFormatLeavesDataset(t *testing.T) {
	ds := sample(2)
	before, _ := json.Marshal(ds)

	var buf bytes.Buffer
	err := Render(&buf, ds, Format("yaml"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output written for unsupported format: %q", buf.String())
	}

	after, _ := json.Marshal(ds)
	if !bytes.Equal(before, after) || len(ds) != 2 {
		t.Error("dataset modified by failed render")
	}
}

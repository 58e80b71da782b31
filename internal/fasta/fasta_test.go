package fasta

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const plain = `>q1 first query
ACGT
ACGT
>q2
NNnn
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestReadRecords(t *testing.T) {
	fn := writeFile(t, "q.fa", plain)
	recs, err := ReadRecords(context.Background(), fn)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].ID != "q1" || recs[0].Header != "q1 first query" || string(recs[0].Seq) != "ACGTACGT" {
		t.Fatalf("bad first record: %+v", recs[0])
	}
	if recs[1].ID != "q2" {
		t.Fatalf("bad second id %q", recs[1].ID)
	}
}

func TestReadRecordsGzip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "q.fa.gz")
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(plain)); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	recs, err := ReadRecords(context.Background(), fn)
	if err != nil {
		t.Fatalf("read gz: %v", err)
	}
	var ids []string
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	if diff := cmp.Diff([]string{"q1", "q2"}, ids); diff != "" {
		t.Fatalf("ids (-want +got):\n%s", diff)
	}
}

func TestReadRecords_Cancelled(t *testing.T) {
	fn := writeFile(t, "q.fa", plain)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ReadRecords(ctx, fn); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestReadRecords_Missing(t *testing.T) {
	if _, err := ReadRecords(context.Background(), filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	in := []Record{{ID: "a", Header: "a desc", Seq: []byte("AC")}, {ID: "b", Seq: []byte("GT")}}
	var buf bytes.Buffer
	if err := Write(&buf, in); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != ">a desc\nAC\n>b\nGT\n" {
		t.Fatalf("unexpected FASTA:\n%s", got)
	}

	fn := filepath.Join(t.TempDir(), "batch.fa")
	if err := WriteFile(fn, in); err != nil {
		t.Fatal(err)
	}
	back, err := ReadRecords(context.Background(), fn)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 || back[1].ID != "b" || string(back[1].Seq) != "GT" {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestCountRecords(t *testing.T) {
	n, err := CountRecords(writeFile(t, "db.fa", plain))
	if err != nil || n != 2 {
		t.Fatalf("count: n=%d err=%v", n, err)
	}
	n, err = CountRecords(writeFile(t, "empty.fa", ""))
	if err != nil || n != 0 {
		t.Fatalf("empty: n=%d err=%v", n, err)
	}
	if _, err := CountRecords(t.TempDir()); err == nil {
		t.Fatalf("directory should error")
	}
}

func TestReadRecords_EmptyFile(t *testing.T) {
	recs, err := ReadRecords(context.Background(), writeFile(t, "empty.fa", ""))
	if err != nil || len(recs) != 0 {
		t.Fatalf("empty file: recs=%v err=%v", recs, err)
	}
}

package oiio

import (
	"reflect"
	"testing"

	"github.com/soupkitchen/dailies/internal/meta"
)

func TestBuildColorArgs(t *testing.T) {
	job := ColorJob{
		InputPattern:  "/renders/ACD1000_CMP.%04d.exr",
		SourceSpace:   "ACES2065-1",
		LogSpace:      "ARRI LogC4",
		LUTPath:       "/luts/show.cube",
		OutputPattern: "/scratch/graded.%04d.png",
	}

	want := []string{
		"oiiotool",
		"/renders/ACD1000_CMP.%04d.exr",
		"--colorconvert", "ACES2065-1", "ARRI LogC4",
		"--ociofiletransform", "/luts/show.cube",
		"-d", "uint16",
		"-o", "/scratch/graded.%04d.png",
	}
	if got := BuildColorArgs(job); !reflect.DeepEqual(got, want) {
		t.Errorf("BuildColorArgs:\n got %q\nwant %q", got, want)
	}
}

func TestBuildConvertArgs(t *testing.T) {
	rw := meta.Rewrite{
		Renamed: []meta.Attr{
			{Name: "DNG:raw_WhiteBalance", Type: "string", Value: "As Shot"},
			{Name: "DNG:raw_black_level", Type: "int", Value: "256"},
			{Name: "DNG:raw_ColorMatrix1", Type: "float[3]", Value: "0.921, -0.333, 0.045"},
		},
		Compression: "dwaa:45",
	}

	want := []string{
		"oiiotool", "/in/frame.DNG",
		"--eraseattrib", "raw:.*",
		"--eraseattrib", "oiio:.*",
		"--sattrib", "DNG:raw_WhiteBalance", "As Shot",
		"--attrib:type=int", "DNG:raw_black_level", "256",
		"--attrib:type=float[3]", "DNG:raw_ColorMatrix1", "0.921, -0.333, 0.045",
		"-d", "half",
		"--compression", "dwaa:45",
		"-o", "/out/frame.exr",
	}
	got := BuildConvertArgs("/in/frame.DNG", "/out/frame.exr", rw)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildConvertArgs:\n got %q\nwant %q", got, want)
	}
}

func TestBuildConvertArgs_NoRenames(t *testing.T) {
	got := BuildConvertArgs("/in/frame.DNG", "/out/frame.exr", meta.Rewrite{Compression: "dwaa:100"})

	// Colliding namespaces are always erased even with nothing to re-add,
	// and the compression level flows through verbatim.
	assertContainsPair(t, got, "--eraseattrib", "raw:.*")
	assertContainsPair(t, got, "--eraseattrib", "oiio:.*")
	assertContainsPair(t, got, "--compression", "dwaa:100")
	for _, a := range got {
		if a == "--sattrib" || a == "--attrib:type=int" {
			t.Errorf("unexpected re-add flag %q with no renamed attrs", a)
		}
	}
}

func assertContainsPair(t *testing.T, args []string, flag, value string) {
	t.Helper()
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag && args[i+1] == value {
			return
		}
	}
	t.Errorf("args missing %q %q: %q", flag, value, args)
}

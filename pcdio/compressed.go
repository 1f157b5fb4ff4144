package pcdio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seqsense/pcgol/pc"
	lzf "github.com/zhuyie/golzf"

	"github.com/pcmotion/pcmotion/cloud"
)

// MarshalCompressed writes c as a binary_compressed PCD: the fields are
// transposed to field-major order and LZF-compressed, with the compressed
// and uncompressed sizes prepended as little-endian int32.
func MarshalCompressed(c *cloud.Cloud, w io.Writer) error {
	pp, err := toPC(c)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"VERSION %.1f\nFIELDS %s\nSIZE %s\nTYPE %s\nCOUNT %s\nWIDTH %d\nHEIGHT %d\nVIEWPOINT %s\nPOINTS %d\nDATA binary_compressed\n",
		pp.Version,
		strings.Join(pp.Fields, " "),
		joinInts(pp.Size),
		strings.Join(pp.Type, " "),
		joinInts(pp.Count),
		pp.Width, pp.Height,
		joinFloats(pp.Viewpoint),
		pp.Points,
	); err != nil {
		return err
	}

	stride := pp.Stride()
	raw := make([]byte, pp.Points*stride)
	pos, offset := 0, 0
	for i := range pp.Fields {
		size := pp.Size[i] * pp.Count[i]
		for p := 0; p < pp.Points; p++ {
			copy(raw[pos:pos+size], pp.Data[p*stride+offset:p*stride+offset+size])
			pos += size
		}
		offset += size
	}

	enc := make([]byte, len(raw)+len(raw)/16+64+3)
	n, err := lzf.Compress(raw, enc)
	if err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(n)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(len(raw))); err != nil {
		return err
	}
	_, err = w.Write(enc[:n])
	return err
}

// UnmarshalCompressed reads a binary_compressed PCD into a new cloud.
func UnmarshalCompressed(r io.Reader) (*cloud.Cloud, error) {
	rb := bufio.NewReader(r)
	pp := &pc.PointCloud{}

L_HEADER:
	for {
		line, _, err := rb.ReadLine()
		if err != nil {
			return nil, err
		}
		args := strings.Fields(string(line))
		if len(args) < 2 {
			return nil, errors.New("header field must have value")
		}
		switch args[0] {
		case "VERSION":
			f, err := strconv.ParseFloat(args[1], 32)
			if err != nil {
				return nil, err
			}
			pp.Version = float32(f)
		case "FIELDS":
			pp.Fields = args[1:]
		case "SIZE":
			if pp.Size, err = parseInts(args[1:]); err != nil {
				return nil, err
			}
		case "TYPE":
			pp.Type = args[1:]
		case "COUNT":
			if pp.Count, err = parseInts(args[1:]); err != nil {
				return nil, err
			}
		case "WIDTH":
			if pp.Width, err = strconv.Atoi(args[1]); err != nil {
				return nil, err
			}
		case "HEIGHT":
			if pp.Height, err = strconv.Atoi(args[1]); err != nil {
				return nil, err
			}
		case "VIEWPOINT":
			if pp.Viewpoint, err = parseFloats(args[1:]); err != nil {
				return nil, err
			}
		case "POINTS":
			if pp.Points, err = strconv.Atoi(args[1]); err != nil {
				return nil, err
			}
		case "DATA":
			if args[1] != "binary_compressed" {
				return nil, fmt.Errorf("unexpected data format %q", args[1])
			}
			break L_HEADER
		}
	}
	if len(pp.Fields) != len(pp.Size) || len(pp.Fields) != len(pp.Type) || len(pp.Fields) != len(pp.Count) {
		return nil, errors.New("field meta sizes mismatch")
	}

	var nCompressed, nUncompressed int32
	if err := binary.Read(rb, binary.LittleEndian, &nCompressed); err != nil {
		return nil, err
	}
	if err := binary.Read(rb, binary.LittleEndian, &nUncompressed); err != nil {
		return nil, err
	}
	b, err := io.ReadAll(rb)
	if err != nil {
		return nil, err
	}
	if int(nCompressed) > len(b) {
		return nil, errors.New("truncated compressed body")
	}
	dec := make([]byte, nUncompressed)
	n, err := lzf.Decompress(b[:nCompressed], dec)
	if err != nil {
		return nil, err
	}
	if n != int(nUncompressed) {
		return nil, errors.New("wrong uncompressed size")
	}

	// Field-major back to per-point stride layout.
	stride := pp.Stride()
	pp.Data = make([]byte, n)
	pos, offset := 0, 0
	for i := range pp.Fields {
		size := pp.Size[i] * pp.Count[i]
		for p := 0; p < pp.Points; p++ {
			copy(pp.Data[p*stride+offset:p*stride+offset+size], dec[pos:pos+size])
			pos += size
		}
		offset += size
	}
	return fromPC(pp)
}

func joinInts(vs []int) string {
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, " ")
}

func joinFloats(vs []float32) string {
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strings.Join(ss, " ")
}

func parseInts(ss []string) ([]int, error) {
	vs := make([]int, len(ss))
	for i, s := range ss {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

func parseFloats(ss []string) ([]float32, error) {
	vs := make([]float32, len(ss))
	for i, s := range ss {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, err
		}
		vs[i] = float32(v)
	}
	return vs, nil
}

package zir

import (
	"context"
	"encoding/binary"
	"io"
	"unsafe"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

type (
	// Header is the fixed prefix of a serialized container. Lengths are
	// in elements of the respective arrays, not bytes. The stat triple
	// identifies the source file the container was lowered from, so a
	// cache hit can be validated without hashing the source.
	Header struct {
		InstLen        uint32
		StringBytesLen uint32
		ExtraLen       uint32
		Unused         uint32

		StatInode uint64
		StatSize  uint64
		StatMtime int64
	}

	// Stat is the source file identity stored into the header.
	Stat struct {
		Inode uint64
		Size  uint64
		Mtime int64
	}
)

const headerSize = 4*4 + 3*8

// tagBytes aliases the tag array as raw bytes. Tag is one byte wide so
// no endianness is involved.
func tagBytes(tags []Tag) []byte {
	if len(tags) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&tags[0])), len(tags))
}

// Everything on the wire is little endian.

func (h *Header) encode(b []byte) {
	binary.LittleEndian.PutUint32(b, h.InstLen)
	binary.LittleEndian.PutUint32(b[4:], h.StringBytesLen)
	binary.LittleEndian.PutUint32(b[8:], h.ExtraLen)
	binary.LittleEndian.PutUint32(b[12:], h.Unused)
	binary.LittleEndian.PutUint64(b[16:], h.StatInode)
	binary.LittleEndian.PutUint64(b[24:], h.StatSize)
	binary.LittleEndian.PutUint64(b[32:], uint64(h.StatMtime))
}

func (h *Header) decode(b []byte) {
	h.InstLen = binary.LittleEndian.Uint32(b)
	h.StringBytesLen = binary.LittleEndian.Uint32(b[4:])
	h.ExtraLen = binary.LittleEndian.Uint32(b[8:])
	h.Unused = binary.LittleEndian.Uint32(b[12:])
	h.StatInode = binary.LittleEndian.Uint64(b[16:])
	h.StatSize = binary.LittleEndian.Uint64(b[24:])
	h.StatMtime = int64(binary.LittleEndian.Uint64(b[32:]))
}

// LoadCode reads a serialized container back into memory. The sections
// follow the header back to back: tags, data, string bytes, extra.
func LoadCode(ctx context.Context, r io.Reader) (_ *Code, h Header, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "zir: load code")
	defer tr.Finish("err", &err)

	var hbuf [headerSize]byte

	_, err = io.ReadFull(r, hbuf[:])
	if err != nil {
		return nil, h, errors.Wrap(err, "header")
	}

	h.decode(hbuf[:])

	if h.Unused != 0 {
		return nil, h, errors.New("reserved header word is %#x", h.Unused)
	}

	if h.ExtraLen < uint32(extraIndexCount) {
		return nil, h, errors.New("extra section of %d words lacks the fixed slots", h.ExtraLen)
	}

	c := &Code{
		Tags:        make([]Tag, h.InstLen),
		Data:        make([]Data, h.InstLen),
		StringBytes: make([]byte, h.StringBytesLen),
		Extra:       make([]uint32, h.ExtraLen),
	}

	_, err = io.ReadFull(r, tagBytes(c.Tags))
	if err != nil {
		return nil, h, errors.Wrap(err, "tags")
	}

	for _, t := range c.Tags {
		if t >= numTags {
			return nil, h, errors.New("unknown instruction tag %d", t)
		}
	}

	b := make([]byte, 8*h.InstLen)

	_, err = io.ReadFull(r, b)
	if err != nil {
		return nil, h, errors.Wrap(err, "data")
	}

	for i := range c.Data {
		c.Data[i].A = binary.LittleEndian.Uint32(b[8*i:])
		c.Data[i].B = binary.LittleEndian.Uint32(b[8*i+4:])
	}

	_, err = io.ReadFull(r, c.StringBytes)
	if err != nil {
		return nil, h, errors.Wrap(err, "string bytes")
	}

	if cap(b) < 4*int(h.ExtraLen) {
		b = make([]byte, 4*h.ExtraLen)
	} else {
		b = b[:4*h.ExtraLen]
	}

	_, err = io.ReadFull(r, b)
	if err != nil {
		return nil, h, errors.Wrap(err, "extra")
	}

	for i := range c.Extra {
		c.Extra[i] = binary.LittleEndian.Uint32(b[4*i:])
	}

	tr.Printw("loaded", "insts", h.InstLen, "string_bytes", h.StringBytesLen, "extra", h.ExtraLen)

	return c, h, nil
}

// StoreCode serializes the container. stat carries the source file
// identity into the header.
func StoreCode(ctx context.Context, w io.Writer, c *Code, stat Stat) (err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "zir: store code", "insts", c.Len())
	defer tr.Finish("err", &err)

	h := Header{
		InstLen:        uint32(len(c.Tags)),
		StringBytesLen: uint32(len(c.StringBytes)),
		ExtraLen:       uint32(len(c.Extra)),

		StatInode: stat.Inode,
		StatSize:  stat.Size,
		StatMtime: stat.Mtime,
	}

	var hbuf [headerSize]byte

	h.encode(hbuf[:])

	_, err = w.Write(hbuf[:])
	if err != nil {
		return errors.Wrap(err, "header")
	}

	_, err = w.Write(tagBytes(c.Tags))
	if err != nil {
		return errors.Wrap(err, "tags")
	}

	b := make([]byte, 8*len(c.Data))

	for i, d := range c.Data {
		binary.LittleEndian.PutUint32(b[8*i:], d.A)
		binary.LittleEndian.PutUint32(b[8*i+4:], d.B)
	}

	_, err = w.Write(b)
	if err != nil {
		return errors.Wrap(err, "data")
	}

	_, err = w.Write(c.StringBytes)
	if err != nil {
		return errors.Wrap(err, "string bytes")
	}

	if cap(b) < 4*len(c.Extra) {
		b = make([]byte, 4*len(c.Extra))
	} else {
		b = b[:4*len(c.Extra)]
	}

	for i, x := range c.Extra {
		binary.LittleEndian.PutUint32(b[4*i:], x)
	}

	_, err = w.Write(b)
	if err != nil {
		return errors.Wrap(err, "extra")
	}

	return nil
}

package main

import (
	"log"
	"math"
	"strings"
)

/*
want=31

A0016C880162017C3686B18A3D4780
*/
func (s solver) D16p1() any {
	return parseBITSPacket(hexBits(s.Line())).versionSum()
}

/*
want=1

9C0141080250320F1802104A08
*/
func (s solver) D16p2() any {
	return parseBITSPacket(hexBits(s.Line())).eval()
}

type bitstream struct {
	bits []byte // one bit per element
	pos  int
}

func hexBits(s string) *bitstream {
	b := &bitstream{bits: make([]byte, 0, 4*len(s))}
	for _, c := range strings.TrimSpace(s) {
		var n byte
		switch {
		case c >= '0' && c <= '9':
			n = byte(c - '0')
		case c >= 'A' && c <= 'F':
			n = byte(c-'A') + 10
		default:
			log.Fatalf("invalid hex digit %q", c)
		}
		b.bits = append(b.bits, n>>3&1, n>>2&1, n>>1&1, n&1)
	}
	return b
}

// take consumes the next n bits as a big-endian number.
func (b *bitstream) take(n int) int {
	v := 0
	for ; n > 0; n-- {
		if b.pos >= len(b.bits) {
			log.Fatal("out of input data")
		}
		v = v<<1 | int(b.bits[b.pos])
		b.pos++
	}
	return v
}

// BITS packet type IDs.
const (
	opSum = iota
	opProduct
	opMinimum
	opMaximum
	opLiteral
	opGreaterThan
	opLessThan
	opEqualTo
)

type bitsPacket struct {
	version int
	typeID  int
	literal int
	sub     []bitsPacket
}

func parseBITSPacket(b *bitstream) bitsPacket {
	p := bitsPacket{version: b.take(3), typeID: b.take(3)}
	switch {
	case p.typeID == opLiteral:
		// Nibbles prefixed with a continuation bit.
		for {
			more := b.take(1)
			p.literal = p.literal<<4 | b.take(4)
			if more == 0 {
				break
			}
		}
	case b.take(1) == 0:
		// Sub-packets delimited by total bit length.
		end := b.take(15) + b.pos
		for b.pos < end {
			p.sub = append(p.sub, parseBITSPacket(b))
		}
	default:
		// Sub-packets delimited by count.
		count := b.take(11)
		for i := 0; i < count; i++ {
			p.sub = append(p.sub, parseBITSPacket(b))
		}
	}
	return p
}

func (p bitsPacket) versionSum() int {
	sum := p.version
	for _, sp := range p.sub {
		sum += sp.versionSum()
	}
	return sum
}

func (p bitsPacket) eval() int {
	cmp := func(cond bool) int {
		if cond {
			return 1
		}
		return 0
	}
	switch p.typeID {
	case opSum:
		v := 0
		for _, sp := range p.sub {
			v += sp.eval()
		}
		return v
	case opProduct:
		v := 1
		for _, sp := range p.sub {
			v *= sp.eval()
		}
		return v
	case opMinimum:
		v := math.MaxInt
		for _, sp := range p.sub {
			v = min(v, sp.eval())
		}
		return v
	case opMaximum:
		v := 0
		for _, sp := range p.sub {
			v = max(v, sp.eval())
		}
		return v
	case opLiteral:
		return p.literal
	case opGreaterThan:
		return cmp(p.sub[0].eval() > p.sub[1].eval())
	case opLessThan:
		return cmp(p.sub[0].eval() < p.sub[1].eval())
	case opEqualTo:
		return cmp(p.sub[0].eval() == p.sub[1].eval())
	}
	log.Fatalf("invalid packet type id %d", p.typeID)
	return 0
}

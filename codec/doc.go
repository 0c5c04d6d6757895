// Package codec serializes batches of quantities into compact binary blobs.
//
// A blob holds quantities of one unit and one rank. It starts with a 32-byte
// header followed by the payload:
//
//	Offset  Size  Field
//	0       2     options: magic (bits 4-15), big-endian flag (bit 1), kind (bit 0)
//	2       1     value encoding (format.EncodingType)
//	3       1     payload compression (format.CompressionType)
//	4       1     rank
//	5       3     reserved, zero
//	8       8     unit id
//	16      4     quantity count
//	20      4     payload size after compression
//	24      4     payload size before compression
//	28      4     CRC-32 (IEEE) of the stored payload
//
// The options word is always little-endian; every other field uses the byte
// order selected by the big-endian flag. The payload is column-major: all
// first components, then all second components, and so on. Each column is
// encoded independently with the selected value encoding, and the
// concatenated columns are then compressed as a whole.
//
// Decoding needs the measurement the unit id belongs to:
//
//	data, err := codec.Encode(readings, codec.WithEncoding(format.TypeGorilla))
//	...
//	back, err := codec.Decode[units.Temperature, quantity.Vec1](units.TemperatureMeasurement, data)
//
// Bytes after the payload are ignored, so blobs can be concatenated and
// walked with Header.BlobSize.
package codec

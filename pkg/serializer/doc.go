// Package serializer writes and reads machine data in JSON, YAML, and table
// form.
//
// Writers serialize any value. Values implementing Tabular control their own
// table layout; everything else is flattened into FIELD/VALUE rows.
//
//	w := serializer.NewStdoutWriter(serializer.FormatTable)
//	defer w.Close()
//	if err := w.Serialize(ctx, receipt); err != nil {
//		return err
//	}
//
// Readers decode JSON or YAML from files, HTTP URLs, or any io.Reader. The
// format of a file is taken from its extension:
//
//	m, err := serializer.FromFile[menu.File]("menu.yaml")
//
// RespondJSON buffers the encoded body before writing headers so a failed
// encode never produces a partial response.
package serializer

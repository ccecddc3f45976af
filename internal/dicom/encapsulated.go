// Package dicom wraps an emitted summary PDF into a DICOM Encapsulated PDF
// object so clinics can file it alongside imaging.
package dicom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// UIDs used by the encapsulated document.
const (
	EncapsulatedPDFStorage = "1.2.840.10008.5.1.4.1.1.104.1"
	ExplicitVRLittleEndian = "1.2.840.10008.1.2.1"
)

// MIMEType is stored in (0042,0012).
const MIMEType = "application/pdf"

// Tags of the Encapsulated Document module.
var (
	tagContentDate                = tag.Tag{Group: 0x0008, Element: 0x0023}
	tagContentTime                = tag.Tag{Group: 0x0008, Element: 0x0033}
	tagConversionType             = tag.Tag{Group: 0x0008, Element: 0x0064}
	tagBurnedInAnnotation         = tag.Tag{Group: 0x0028, Element: 0x0301}
	tagDocumentTitle              = tag.Tag{Group: 0x0042, Element: 0x0010}
	tagEncapsulatedDocument       = tag.Tag{Group: 0x0042, Element: 0x0011}
	tagMIMEType                   = tag.Tag{Group: 0x0042, Element: 0x0012}
	tagEncapsulatedDocumentLength = tag.Tag{Group: 0x0042, Element: 0x0015}
)

// ErrEmptyDocument is returned when there are no PDF bytes to wrap.
var ErrEmptyDocument = errors.New("dicom: empty document")

// Patient identifies who the document belongs to.
type Patient struct {
	Name string
	ID   string
}

// Options describes the wrapped document.
type Options struct {
	Patient Patient
	Title   string
	Created time.Time
}

// NewUID derives a UID under the 2.25 root from a random UUID.
func NewUID() string {
	u := uuid.New()
	return "2.25." + new(big.Int).SetBytes(u[:]).String()
}

// mustNewElement creates a DICOM element and panics on error. Only used with
// values whose types are fixed at compile time.
func mustNewElement(t tag.Tag, value interface{}) *dicom.Element {
	elem, err := dicom.NewElement(t, value)
	if err != nil {
		panic(fmt.Sprintf("failed to create element %v: %v", t, err))
	}
	return elem
}

// Encapsulate builds a dataset carrying pdf, elements in ascending tag
// order. The document is padded to an even length; its real length is kept
// in (0042,0015).
func Encapsulate(pdf []byte, opts Options) (dicom.Dataset, error) {
	if len(pdf) == 0 {
		return dicom.Dataset{}, ErrEmptyDocument
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		return dicom.Dataset{}, fmt.Errorf("dicom: document is not a PDF")
	}

	created := opts.Created
	if created.IsZero() {
		created = time.Now()
	}
	date := created.Format("20060102")
	tm := created.Format("150405")

	payload := pdf
	if len(payload)%2 != 0 {
		payload = append(append([]byte(nil), pdf...), 0)
	}

	sopInstanceUID := NewUID()
	return dicom.Dataset{Elements: []*dicom.Element{
		mustNewElement(tag.MediaStorageSOPClassUID, []string{EncapsulatedPDFStorage}),
		mustNewElement(tag.MediaStorageSOPInstanceUID, []string{sopInstanceUID}),
		mustNewElement(tag.TransferSyntaxUID, []string{ExplicitVRLittleEndian}),
		mustNewElement(tag.SOPClassUID, []string{EncapsulatedPDFStorage}),
		mustNewElement(tag.SOPInstanceUID, []string{sopInstanceUID}),
		mustNewElement(tag.StudyDate, []string{date}),
		mustNewElement(tagContentDate, []string{date}),
		mustNewElement(tag.StudyTime, []string{tm}),
		mustNewElement(tagContentTime, []string{tm}),
		mustNewElement(tag.Modality, []string{"DOC"}),
		mustNewElement(tagConversionType, []string{"WSD"}),
		mustNewElement(tag.PatientName, []string{opts.Patient.Name}),
		mustNewElement(tag.PatientID, []string{opts.Patient.ID}),
		mustNewElement(tag.StudyInstanceUID, []string{NewUID()}),
		mustNewElement(tag.SeriesInstanceUID, []string{NewUID()}),
		mustNewElement(tag.SeriesNumber, []string{"1"}),
		mustNewElement(tag.InstanceNumber, []string{"1"}),
		mustNewElement(tagBurnedInAnnotation, []string{"YES"}),
		mustNewElement(tagDocumentTitle, []string{opts.Title}),
		mustNewElement(tagMIMEType, []string{MIMEType}),
		mustNewElement(tagEncapsulatedDocument, payload),
		mustNewElement(tagEncapsulatedDocumentLength, []int{len(pdf)}),
	}}, nil
}

// Write encapsulates pdf and writes the Part 10 file to w.
func Write(w io.Writer, pdf []byte, opts Options) error {
	ds, err := Encapsulate(pdf, opts)
	if err != nil {
		return err
	}
	return dicom.Write(w, ds)
}

// WriteFile is Write to a newly created file.
func WriteFile(filename string, pdf []byte, opts Options) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return Write(f, pdf, opts)
}

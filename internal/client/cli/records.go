package cli

import (
	"context"
	"fmt"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/filex"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
)

const maxPhotoBytes = 10 << 20

// Traceability lists batch records. A super_admin sees every tenant.
func (a *App) Traceability(ctx context.Context) error {
	return a.guarded(ctx, "traceability", func(u *dto.UserProfile) error {
		list, err := a.traceability.List(ctx, u)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			printlnFn("No traceability records yet")
			return nil
		}
		w := newTable(a.out)
		fmt.Fprintln(w, "ID\tSIRET\tPRODUCT\tBATCH\tTRANSFORMED\tUSE BY\tPHOTO")
		for _, r := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.AdminClientSiret, r.ProductName, orDash(r.BatchNumber),
				r.TransformationDate, r.UseByDate, orDash(r.PhotoID))
		}
		return w.Flush()
	})
}

func (a *App) AddTraceability(ctx context.Context) error {
	return a.guarded(ctx, "traceability-new", func(*dto.UserProfile) error {
		in, err := a.ask(
			"Product name",
			"Batch number",
			"Transformation date (YYYY-MM-DD)",
			"Use-by date (YYYY-MM-DD)",
			"Photo ID (empty for none)",
			"Notes",
		)
		if err != nil {
			return err
		}
		r, err := a.traceability.Create(ctx, dto.TraceabilityRequest{
			ProductName:        in[0],
			BatchNumber:        in[1],
			TransformationDate: in[2],
			UseByDate:          in[3],
			PhotoID:            in[4],
			Notes:              in[5],
		})
		if err != nil {
			printFieldErrors(err)
			return err
		}
		printlnFn("Traceability record created:", r.ID)
		return nil
	})
}

func (a *App) DeleteTraceability(ctx context.Context) error {
	return a.guarded(ctx, "traceability-delete", func(*dto.UserProfile) error {
		id, err := getSimpleText(a.reader, "Record ID", a.out)
		if err != nil {
			return err
		}
		if err := a.traceability.Delete(ctx, id); err != nil {
			return err
		}
		printlnFn("Traceability record deleted")
		return nil
	})
}

// Photos lists photo metadata. A super_admin picks the tenant by SIRET.
func (a *App) Photos(ctx context.Context) error {
	return a.guarded(ctx, "photos", func(u *dto.UserProfile) error {
		var siret string
		if u.Role == roles.SuperAdmin {
			s, err := getSimpleText(a.reader, "Company SIRET", a.out)
			if err != nil {
				return err
			}
			siret = s
		}
		list, err := a.photos.List(ctx, u, siret)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			printlnFn("No photos yet")
			return nil
		}
		w := newTable(a.out)
		fmt.Fprintln(w, "ID\tSTATUS\tTYPE\tUPLOADED AT")
		for _, p := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Status, p.ContentType, formatTime(p.CreatedAt))
		}
		return w.Flush()
	})
}

// UploadPhoto sends a local image file to object storage.
func (a *App) UploadPhoto(ctx context.Context) error {
	return a.guarded(ctx, "photo-upload", func(*dto.UserProfile) error {
		path, err := getSimpleText(a.reader, "Path to image file", a.out)
		if err != nil {
			return err
		}
		data, err := filex.ReadLimited(path, maxPhotoBytes)
		if err != nil {
			return err
		}
		p, err := a.photos.Upload(ctx, data)
		if err != nil {
			return err
		}
		printlnFn("Photo uploaded:", p.ID)
		return nil
	})
}

// PhotoURL prints a short-lived download link.
func (a *App) PhotoURL(ctx context.Context) error {
	return a.guarded(ctx, "photos", func(*dto.UserProfile) error {
		id, err := getSimpleText(a.reader, "Photo ID", a.out)
		if err != nil {
			return err
		}
		url, err := a.photos.URL(ctx, id)
		if err != nil {
			return err
		}
		printlnFn(url)
		return nil
	})
}

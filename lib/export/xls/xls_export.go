package xlsexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"talent-bridge-backend/models"
	dbmodels "talent-bridge-backend/models/db"
)

type Provider interface {
	ExportSubmissionList(list []dbmodels.SubmissionExt, viewer models.UserRole) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var submissionHeaders = []string{"Кандидат", "Контакты", "Вакансия", "Рекрутер", "Дата отклика", "Этап"}

func (i impl) ExportSubmissionList(list []dbmodels.SubmissionExt, viewer models.UserRole) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, submissionHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeSubmissionData(f, sheet, list, viewer, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Отклики")
	return f.WriteToBuffer()
}

func writeSubmissionData(f *excelize.File, sheet string, list []dbmodels.SubmissionExt, viewer models.UserRole, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(submissionHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Кандидат"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.CandidateName); err != nil {
			return row, err
		}

		// "Контакты", скрываются от работодателя
		col++
		if viewer.CanSeeContacts() {
			if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.CandidatePhone, item.CandidateEmail)); err != nil {
				return row, err
			}
		}

		// "Вакансия"
		col++
		if err := writeColumn(f, sheet, col, row, item.JobTitle); err != nil {
			return row, err
		}

		// "Рекрутер"
		col++
		recruiterName := strings.TrimSpace(item.RecruiterLastName + " " + item.RecruiterFirstName)
		if err := writeColumn(f, sheet, col, row, recruiterName); err != nil {
			return row, err
		}

		// "Дата отклика"
		col++
		if !item.SubmittedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.SubmittedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Этап"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}
	}
	return row, nil
}

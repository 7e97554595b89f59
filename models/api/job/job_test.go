package jobapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	dbmodels "talent-bridge-backend/models/db"
)

func TestFeeConvert(t *testing.T) {
	t.Run(`расчет комиссии от максимальной вилки`, func(t *testing.T) {
		job := dbmodels.Job{
			SalaryMin:           200000,
			SalaryMax:           300000,
			PlacementFeePercent: 20,
		}
		fee := FeeConvert(job)
		require.Equal(t, 60000, fee.Total)
		require.Equal(t, 42000, fee.RecruiterShare)
		require.Equal(t, 18000, fee.PlatformShare)
	})

	t.Run(`доли в сумме дают комиссию`, func(t *testing.T) {
		job := dbmodels.Job{
			SalaryMax:           333333,
			PlacementFeePercent: 15,
		}
		fee := FeeConvert(job)
		require.Equal(t, fee.Total, fee.RecruiterShare+fee.PlatformShare)
	})
}

func TestJobDataValidate(t *testing.T) {
	valid := JobData{
		Title:               "Go разработчик",
		MustHave:            []string{"Go", "PostgreSQL"},
		SalaryMin:           200000,
		SalaryMax:           300000,
		PlacementFeePercent: 20,
	}

	t.Run(`корректные данные`, func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run(`вилка наоборот`, func(t *testing.T) {
		bad := valid
		bad.SalaryMin = 400000
		require.Error(t, bad.Validate())
	})

	t.Run(`процент комиссии за пределами`, func(t *testing.T) {
		bad := valid
		bad.PlacementFeePercent = 150
		require.Error(t, bad.Validate())
	})

	t.Run(`без обязательных требований`, func(t *testing.T) {
		bad := valid
		bad.MustHave = nil
		require.Error(t, bad.Validate())
	})
}

package seeders

import "facility-console/internal/dto"

var equipmentData = []dto.CreateEquipmentDTO{
	{Name: "터빈", Model: "T-100", Manufacturer: "두산에너빌리티", Status: "normal", Location: "발전동 1층", InstallDate: "2019-03-15",
		Specifications: map[string]string{"출력": "50MW", "회전수": "3600rpm"}},
	{Name: "보일러", Model: "B-200", Manufacturer: "한국보일러", Status: "needs_inspection", Location: "보일러동", InstallDate: "2018-07-01",
		Specifications: map[string]string{"증기량": "120t/h"}},
	{Name: "냉각탑", Model: "CT-30", Manufacturer: "경인기계", Status: "normal", Location: "옥외 A구역", InstallDate: "2020-05-20"},
	{Name: "변압기", Model: "TR-154", Manufacturer: "LS일렉트릭", Status: "normal", Location: "변전실", InstallDate: "2017-11-11",
		Specifications: map[string]string{"용량": "60MVA", "전압": "154kV"}},
	{Name: "급수펌프", Model: "P-75", Manufacturer: "윌로", Status: "under_maintenance", Location: "펌프실", InstallDate: "2021-02-03"},
}

var personnelData = []dto.PersonnelDTO{
	{Name: "김정비", Position: "반장", Department: "설비팀", Field: "mechanical", Phone: "010-1111-2222", HireDate: "2012-03-02"},
	{Name: "이전기", Position: "주임", Department: "설비팀", Field: "electrical", Phone: "010-3333-4444", HireDate: "2016-09-01"},
	{Name: "박계장", Position: "기사", Department: "설비팀", Field: "control", Phone: "010-5555-6666", HireDate: "2020-01-06"},
}

// workOrderSeed is a work order plus the state it should be moved to after creation.
type workOrderSeed struct {
	order      dto.CreateWorkOrderDTO
	status     string
	workResult string
}

var workOrderData = []workOrderSeed{
	{
		order: dto.CreateWorkOrderDTO{Title: "터빈 베어링 점검", Equipment: "터빈", EquipmentName: "T-100",
			Assignees: []string{"김정비"}, Types: []string{"mechanical"}},
		status: "done", workResult: "베어링 윤활유 교체 완료",
	},
	{
		order: dto.CreateWorkOrderDTO{Title: "보일러 안전밸브 검사", Equipment: "보일러", EquipmentName: "B-200",
			Assignees: []string{"김정비", "박계장"}, Types: []string{"mechanical", "control"}},
		status: "in_progress",
	},
	{
		order: dto.CreateWorkOrderDTO{Title: "변압기 절연유 분석", Equipment: "변압기", EquipmentName: "TR-154",
			Assignees: []string{"이전기"}, Types: []string{"electrical"}},
		status: "waiting",
	},
}

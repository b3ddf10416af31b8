package symbols

// Library vector offset tables, sorted by ascending offset.

var execFunctions = []function{
	{-714, "FreePooled"},
	{-708, "AllocPooled"},
	{-702, "DeletePool"},
	{-696, "CreatePool"},
	{-690, "FreeVec"},
	{-684, "AllocVec"},
	{-678, "ObtainSemaphoreShared"},
	{-672, "DeleteMsgPort"},
	{-666, "CreateMsgPort"},
	{-660, "DeleteIORequest"},
	{-654, "CreateIORequest"},
	{-648, "CacheControl"},
	{-642, "CacheClearE"},
	{-636, "CacheClearU"},
	{-630, "CopyMemQuick"},
	{-624, "CopyMem"},
	{-618, "AddMemList"},
	{-612, "SumKickData"},
	{-606, "RemSemaphore"},
	{-600, "AddSemaphore"},
	{-594, "FindSemaphore"},
	{-588, "ReleaseSemaphoreList"},
	{-582, "ObtainSemaphoreList"},
	{-576, "AttemptSemaphore"},
	{-570, "ReleaseSemaphore"},
	{-564, "ObtainSemaphore"},
	{-558, "InitSemaphore"},
	{-552, "OpenLibrary"},
	{-546, "Procure"},
	{-540, "TypeOfMem"},
	{-534, "GetCC"},
	{-528, "RawDoFmt"},
	{-522, "SetCurrentBinding"},
	{-516, "GetCurrentBinding"},
	{-510, "ExpungeLibrary"},
	{-504, "CloseLibrary"},
	{-498, "OldOpenLibrary"},
	{-492, "RemLibrary"},
	{-486, "AddLibrary"},
	{-480, "SumLibrary"},
	{-474, "SetFunction"},
	{-468, "FindConfigDev"},
	{-462, "CloseDevice"},
	{-456, "OpenDevice"},
	{-450, "RemDevice"},
	{-444, "AddDevice"},
	{-438, "AbortIO"},
	{-432, "CheckIO"},
	{-426, "SendIO"},
	{-420, "DoIO"},
	{-414, "WaitIO"},
	{-408, "ReplyMsg"},
	{-402, "PutMsg"},
	{-396, "GetMsg"},
	{-390, "FindPort"},
	{-384, "WaitPort"},
	{-378, "RemPort"},
	{-372, "AddPort"},
	{-366, "OpenResource"},
	{-360, "RemResource"},
	{-354, "AddResource"},
	{-348, "CmpTime"},
	{-342, "AddTime"},
	{-336, "SubTime"},
	{-330, "Wait"},
	{-324, "Signal"},
	{-318, "FindPort"},
	{-312, "SetExcept"},
	{-306, "SetSignal"},
	{-300, "SetTaskPri"},
	{-294, "FindTask"},
	{-288, "RemTask"},
	{-282, "AddTask"},
	{-276, "FindName"},
	{-270, "Enqueue"},
	{-264, "RemTail"},
	{-258, "RemHead"},
	{-252, "Remove"},
	{-246, "AddTail"},
	{-240, "AddHead"},
	{-234, "Insert"},
	{-228, "FreeEntry"},
	{-222, "AllocEntry"},
	{-216, "AvailMem"},
	{-210, "FreeMem"},
	{-204, "AllocAbs"},
	{-198, "AllocMem"},
	{-192, "Deallocate"},
	{-186, "Allocate"},
	{-180, "Cause"},
	{-174, "RemIntServer"},
	{-168, "AddIntServer"},
	{-162, "SetIntVector"},
	{-156, "UserState"},
	{-150, "SuperState"},
	{-144, "SetSR"},
	{-138, "Permit"},
	{-132, "Forbid"},
	{-126, "Enable"},
	{-120, "Disable"},
	{-114, "Debug"},
	{-108, "Alert"},
	{-102, "InitResident"},
	{-96, "FindResident"},
	{-90, "MakeFunctions"},
	{-84, "MakeLibrary"},
	{-78, "InitStruct"},
	{-72, "InitCode"},
	{-66, "Exception"},
	{-60, "Dispatch"},
	{-54, "Switch"},
	{-48, "Reschedule"},
	{-42, "Schedule"},
	{-36, "ExitIntr"},
	{-30, "Supervisor"},
}

var dosFunctions = []function{
	{-456, "AssignLate"},
	{-450, "AssignLock"},
	{-444, "SystemTagList"},
	{-438, "ErrorReport"},
	{-432, "PrintFault"},
	{-426, "FreeArgs"},
	{-420, "ReadArgs"},
	{-414, "AddPart"},
	{-408, "PathPart"},
	{-402, "FilePart"},
	{-378, "MatchPatternNoCase"},
	{-372, "ParsePatternNoCase"},
	{-360, "SetVBuf"},
	{-348, "VFPrintf"},
	{-342, "VFWritef"},
	{-336, "FPuts"},
	{-330, "FGets"},
	{-324, "FWrite"},
	{-318, "FRead"},
	{-312, "FPutC"},
	{-306, "FGetC"},
	{-300, "SelectOutput"},
	{-294, "SelectInput"},
	{-288, "UnLockRecords"},
	{-282, "UnLockRecord"},
	{-276, "LockRecords"},
	{-270, "LockRecord"},
	{-264, "AbortPkt"},
	{-258, "ReplyPkt"},
	{-252, "WaitPkt"},
	{-246, "SendPkt"},
	{-240, "DoPkt"},
	{-234, "FreeDosObject"},
	{-228, "AllocDosObject"},
	{-222, "Execute"},
	{-204, "Delay"},
	{-198, "DateStamp"},
	{-192, "SetProtection"},
	{-186, "SetComment"},
	{-180, "DeviceProc"},
	{-174, "UnLoadSeg"},
	{-168, "LoadSeg"},
	{-144, "Exit"},
	{-138, "CreateProc"},
	{-132, "IoErr"},
	{-126, "CurrentDir"},
	{-120, "CreateDir"},
	{-114, "Info"},
	{-108, "ExNext"},
	{-102, "Examine"},
	{-96, "DupLock"},
	{-90, "UnLock"},
	{-84, "Lock"},
	{-78, "Rename"},
	{-72, "DeleteFile"},
	{-66, "Seek"},
	{-60, "Output"},
	{-54, "Input"},
	{-48, "Write"},
	{-42, "Read"},
	{-36, "Close"},
	{-30, "Open"},
}

var intuitionFunctions = []function{
	{-618, "BuildEasyRequestArgs"},
	{-612, "EasyRequestArgs"},
	{-438, "RethinkDisplay"},
	{-432, "RemakeDisplay"},
	{-426, "MakeScreen"},
	{-414, "FreeSysRequest"},
	{-408, "EndRefresh"},
	{-402, "BuildSysRequest"},
	{-396, "BeginRefresh"},
	{-390, "AutoRequest"},
	{-336, "WindowLimits"},
	{-330, "WindowToFront"},
	{-324, "WindowToBack"},
	{-318, "ViewPortAddress"},
	{-312, "ViewAddress"},
	{-306, "SizeWindow"},
	{-300, "ShowTitle"},
	{-294, "SetWindowTitles"},
	{-288, "SetPointer"},
	{-282, "SetMenuStrip"},
	{-276, "SetDMRequest"},
	{-270, "ScreenToFront"},
	{-264, "ScreenToBack"},
	{-258, "Request"},
	{-252, "ReportMouse"},
	{-228, "RemoveGadget"},
	{-222, "RefreshGadgets"},
	{-210, "OpenWorkBench"},
	{-204, "OpenWindow"},
	{-198, "OpenScreen"},
	{-192, "OnMenu"},
	{-186, "OnGadget"},
	{-180, "OffMenu"},
	{-174, "OffGadget"},
	{-168, "MoveWindow"},
	{-162, "MoveScreen"},
	{-156, "ModifyProp"},
	{-150, "ModifyIDCMP"},
	{-144, "ItemAddress"},
	{-138, "InitRequester"},
	{-132, "GetPrefs"},
	{-126, "GetDefPrefs"},
	{-120, "EndRequest"},
	{-114, "DrawImage"},
	{-108, "DrawBorder"},
	{-102, "DoubleClick"},
	{-96, "DisplayBeep"},
	{-90, "DisplayAlert"},
	{-84, "CurrentTime"},
	{-78, "CloseWorkBench"},
	{-72, "CloseWindow"},
	{-66, "CloseScreen"},
	{-60, "ClearPointer"},
	{-54, "ClearMenuStrip"},
	{-48, "ClearDMRequest"},
	{-42, "AddGadget"},
	{-36, "Intuition"},
	{-30, "OpenIntuition"},
}

var graphicsFunctions = []function{
	{-618, "FreeBitMap"},
	{-612, "AllocBitMap"},
	{-504, "BltBitMapRastPort"},
	{-444, "LoadRGB4"},
	{-438, "MrgCop"},
	{-432, "MakeVPort"},
	{-420, "FreeRaster"},
	{-414, "AllocRaster"},
	{-408, "WaitBOVP"},
	{-402, "ScrollRaster"},
	{-396, "InitBitMap"},
	{-384, "DisownBlitter"},
	{-378, "OwnBlitter"},
	{-372, "SetRast"},
	{-366, "WaitBlit"},
	{-360, "LoadView"},
	{-336, "InitView"},
	{-324, "SetDrMd"},
	{-318, "SetBPen"},
	{-312, "SetAPen"},
	{-306, "PolyDraw"},
	{-300, "Flood"},
	{-288, "WritePixel"},
	{-282, "ReadPixel"},
	{-276, "BltPattern"},
	{-270, "RectFill"},
	{-264, "BltClear"},
	{-258, "QBSBlit"},
	{-252, "SetRGB4"},
	{-240, "InitVPort"},
	{-234, "InitRastPort"},
	{-222, "AreaEnd"},
	{-216, "AreaDraw"},
	{-210, "AreaMove"},
	{-204, "Draw"},
	{-198, "Move"},
	{-90, "SetSoftStyle"},
	{-84, "AskSoftStyle"},
	{-78, "CloseFont"},
	{-72, "OpenFont"},
	{-66, "SetFont"},
	{-60, "Text"},
	{-54, "TextLength"},
	{-48, "ClearScreen"},
	{-42, "ClearEOL"},
	{-36, "BltTemplate"},
	{-30, "BltBitMap"},
}
